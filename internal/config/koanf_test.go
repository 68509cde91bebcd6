// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/serendip/internal/recommend"
)

// isolate moves the test into an empty directory so no config.yaml or .env
// from the repository is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Catalog.Path != "Augmented_Dataset_with_Relevance.xlsx" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if !cfg.Catalog.StripHTML || !cfg.Catalog.Watch {
		t.Error("Catalog.StripHTML and Catalog.Watch should default to true")
	}
	if cfg.Recommend.Profile != recommend.ProfileMerged {
		t.Errorf("Recommend.Profile = %q, want merged", cfg.Recommend.Profile)
	}

	engine, err := cfg.Recommend.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	if engine.SerendipitousCount != 2 || engine.PreferredCount != 4 || engine.Layout != recommend.LayoutMerged {
		t.Errorf("engine config = %+v, want 2+4 merged", engine)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CATALOG_PATH", "articles.csv")
	t.Setenv("CATALOG_RELOAD_INTERVAL", "5m")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Catalog.Path != "articles.csv" {
		t.Errorf("Catalog.Path = %q, want articles.csv", cfg.Catalog.Path)
	}
	if cfg.Catalog.ReloadInterval != 5*time.Minute {
		t.Errorf("Catalog.ReloadInterval = %v, want 5m", cfg.Catalog.ReloadInterval)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "config.yaml", `
server:
  port: 7000
security:
  cors_origins:
    - https://news.example
catalog:
  path: data/articles.json
  reload_min_gap: 10s
recommend:
  profile: grouped
`)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://news.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Catalog.ReloadMinGap != 10*time.Second {
		t.Errorf("Catalog.ReloadMinGap = %v, want 10s", cfg.Catalog.ReloadMinGap)
	}

	engine, err := cfg.Recommend.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	if engine.Layout != recommend.LayoutGrouped {
		t.Errorf("Layout = %q, want grouped", engine.Layout)
	}
}

func TestLoadWithKoanf_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.yml", "server:\n  port: 7000\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100", cfg.Server.Port)
	}
}

func TestLoadWithKoanf_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, ".env", "RECOMMEND_PROFILE=merged-extended\nLOG_FORMAT=console\n")
	// Process environment wins over the file.
	t.Setenv("LOG_FORMAT", "json")
	// godotenv sets variables directly; register cleanup so other tests see a clean environment.
	t.Cleanup(func() { os.Unsetenv("RECOMMEND_PROFILE") })

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Recommend.Profile != recommend.ProfileMergedExtended {
		t.Errorf("Recommend.Profile = %q, want merged-extended", cfg.Recommend.Profile)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_RecommendOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, c *recommend.Config)
	}{
		{
			name: "profile only",
			env:  map[string]string{"RECOMMEND_PROFILE": "grouped-extended"},
			check: func(t *testing.T, c *recommend.Config) {
				if c.PreferredCount != 6 || !c.IncludeTopic {
					t.Errorf("got %+v, want grouped-extended values", c)
				}
			},
		},
		{
			name: "count override keeps profile layout",
			env: map[string]string{
				"RECOMMEND_PROFILE":         "grouped",
				"RECOMMEND_PREFERRED_COUNT": "5",
			},
			check: func(t *testing.T, c *recommend.Config) {
				if c.PreferredCount != 5 || c.Layout != recommend.LayoutGrouped {
					t.Errorf("got %d/%s, want 5/grouped", c.PreferredCount, c.Layout)
				}
			},
		},
		{
			name: "explicit false turns off profile flag",
			env: map[string]string{
				"RECOMMEND_PROFILE":       "grouped-extended",
				"RECOMMEND_INCLUDE_TOPIC": "false",
			},
			check: func(t *testing.T, c *recommend.Config) {
				if c.IncludeTopic {
					t.Error("IncludeTopic should be false")
				}
			},
		},
		{
			name: "explicit empty weather clears it",
			env: map[string]string{
				"RECOMMEND_PROFILE": "merged-topics",
				"RECOMMEND_WEATHER": "",
			},
			check: func(t *testing.T, c *recommend.Config) {
				if c.Weather != "" {
					t.Errorf("Weather = %q, want empty", c.Weather)
				}
				if !c.IncludeToday {
					t.Error("IncludeToday should stay on")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadWithKoanf()
			if err != nil {
				t.Fatalf("LoadWithKoanf() error = %v", err)
			}
			engine, err := cfg.Recommend.EngineConfig()
			if err != nil {
				t.Fatalf("EngineConfig() error = %v", err)
			}
			tt.check(t, engine)
		})
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"unknown profile", map[string]string{"RECOMMEND_PROFILE": "sideways"}},
		{"zero preferred", map[string]string{"RECOMMEND_PREFERRED_COUNT": "0"}},
		{"unknown catalog format", map[string]string{"CATALOG_PATH": "articles.txt"}},
		{"postgres without dsn", map[string]string{"CATALOG_FORMAT": "postgres"}},
		{"rate limit window too long", map[string]string{"RATE_LIMIT_WINDOW": "2h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"catalog_path", "catalog.path"},
		{"RECOMMEND_INCLUDE_TODAY", "recommend.include_today"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnvMappingsTargetKnownKeys(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	for env, path := range envMappings {
		if !k.Exists(path) {
			t.Errorf("%s maps to %s which is not a config key", env, path)
		}
	}
}

func TestProcessSliceFields(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	if err := k.Set("security.cors_origins", " a , ,b "); err != nil {
		t.Fatal(err)
	}
	if err := processSliceFields(k); err != nil {
		t.Fatalf("processSliceFields() error = %v", err)
	}
	got := k.Strings("security.cors_origins")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("cors_origins = %v, want [a b]", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	writeConfig(t, dir, "config.yml", "server: {}\n")
	if got := findConfigFile(); got != "config.yml" {
		t.Errorf("findConfigFile() = %q, want config.yml", got)
	}

	custom := writeConfig(t, dir, "other.yaml", "server: {}\n")
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want %q", got, custom)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	if got := findConfigFile(); got != "config.yml" {
		t.Errorf("missing CONFIG_PATH should fall back, got %q", got)
	}
}
