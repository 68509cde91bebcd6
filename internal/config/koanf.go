// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/serendip/config.yaml",
	"/etc/serendip/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPath is the optional dotenv file read before the environment layer.
var DotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:            "Augmented_Dataset_with_Relevance.xlsx",
			Table:           "articles",
			StripHTML:       true,
			Watch:           true,
			ReloadInterval:  0,
			ReloadMinGap:    5 * time.Second,
			BreakerFailures: 3,
			BreakerTimeout:  time.Minute,
			LoadTimeout:     30 * time.Second,
		},
		Recommend: RecommendConfig{
			Profile:        "merged",
			DateLayout:     "January 2, 2006",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults from defaultConfig()
//  2. Config file (optional)
//  3. Environment variables, after .env is applied to the process environment
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layers 2 and 3 are collected separately so recommend overrides can tell
	// an explicit value from a default.
	user := koanf.New(".")

	configPath := findConfigFile()
	if configPath != "" {
		if err := user.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HTTP_PORT -> server.port, CATALOG_PATH -> catalog.path
	if err := user.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := k.Merge(user); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Recommend.explicit = explicitKeys(user, "recommend")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv applies a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// explicitKeys returns the leaf keys under section that k holds, without the
// section prefix.
func explicitKeys(k *koanf.Koanf, section string) map[string]bool {
	keys := make(map[string]bool)
	prefix := section + "."
	for _, key := range k.Keys() {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			keys[rest] = true
		}
	}
	return keys
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower case) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":             "catalog.path",
	"catalog_format":           "catalog.format",
	"catalog_sheet":            "catalog.sheet",
	"catalog_dsn":              "catalog.dsn",
	"catalog_table":            "catalog.table",
	"catalog_strip_html":       "catalog.strip_html",
	"catalog_watch":            "catalog.watch",
	"catalog_reload_interval":  "catalog.reload_interval",
	"catalog_reload_min_gap":   "catalog.reload_min_gap",
	"catalog_breaker_failures": "catalog.breaker_failures",
	"catalog_breaker_timeout":  "catalog.breaker_timeout",
	"catalog_load_timeout":     "catalog.load_timeout",

	// Recommend
	"recommend_profile":             "recommend.profile",
	"recommend_serendipitous_count": "recommend.serendipitous_count",
	"recommend_preferred_count":     "recommend.preferred_count",
	"recommend_layout":              "recommend.layout",
	"recommend_include_topic":       "recommend.include_topic",
	"recommend_include_today":       "recommend.include_today",
	"recommend_weather":             "recommend.weather",
	"recommend_date_layout":         "recommend.date_layout",
	"recommend_request_timeout":     "recommend.request_timeout",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
//   - CATALOG_PATH -> catalog.path
//   - RECOMMEND_PROFILE -> recommend.profile
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// Unmapped variables are skipped so the rest of the environment cannot
	// leak into the config.
	return ""
}

// WatchConfigFile calls callback whenever the file at path changes.
// Watch errors are passed to callback so the caller can log them.
//
//	err := config.WatchConfigFile(cfg.Catalog.Path, func(err error) {
//	    if err != nil {
//	        logger.Warn().Err(err).Msg("catalog watch error")
//	        return
//	    }
//	    trigger()
//	})
func WatchConfigFile(path string, callback func(err error)) (unwatch func() error, err error) {
	provider := file.Provider(path)

	if err := provider.Watch(func(_ interface{}, err error) {
		callback(err)
	}); err != nil {
		return nil, err
	}
	return provider.Unwatch, nil
}
