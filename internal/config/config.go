// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/recommend"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds request throttling and cross-origin settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig describes where articles come from and how the in-memory
// snapshot is refreshed.
//
// Environment Variables:
//   - CATALOG_PATH: catalog file (default: Augmented_Dataset_with_Relevance.xlsx)
//   - CATALOG_FORMAT: csv, xlsx, json, yaml, postgres (default: from extension)
//   - CATALOG_SHEET: xlsx sheet (default: first sheet)
//   - CATALOG_DSN, CATALOG_TABLE: postgres source
//   - CATALOG_STRIP_HTML: reduce HTML summaries to text (default: true)
//   - CATALOG_WATCH: reload when the file changes (default: true)
//   - CATALOG_RELOAD_INTERVAL: periodic reload, 0 disables (default: 0)
//   - CATALOG_RELOAD_MIN_GAP: minimum time between reloads (default: 5s)
//   - CATALOG_BREAKER_FAILURES: consecutive failures before the source is skipped (default: 3)
//   - CATALOG_BREAKER_TIMEOUT: how long a tripped source is skipped (default: 1m)
//   - CATALOG_LOAD_TIMEOUT: bound on a single load (default: 30s)
type CatalogConfig struct {
	Path      string `koanf:"path"`
	Format    string `koanf:"format"`
	Sheet     string `koanf:"sheet"`
	DSN       string `koanf:"dsn"`
	Table     string `koanf:"table"`
	StripHTML bool   `koanf:"strip_html"`

	Watch          bool          `koanf:"watch"`
	ReloadInterval time.Duration `koanf:"reload_interval"`
	ReloadMinGap   time.Duration `koanf:"reload_min_gap"`

	BreakerFailures int           `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
	LoadTimeout     time.Duration `koanf:"load_timeout"`
}

// SourceConfig converts to the catalog package's source selection.
func (c CatalogConfig) SourceConfig() catalog.SourceConfig {
	return catalog.SourceConfig{
		Path:      c.Path,
		Format:    c.Format,
		Sheet:     c.Sheet,
		DSN:       c.DSN,
		Table:     c.Table,
		StripHTML: c.StripHTML,
	}
}

// BreakerConfig converts to the catalog circuit breaker settings.
func (c CatalogConfig) BreakerConfig() catalog.BreakerConfig {
	failures := c.BreakerFailures
	if failures < 0 {
		failures = 0
	}
	return catalog.BreakerConfig{
		ConsecutiveFailures: uint32(failures), //nolint:gosec // bounded by validateCatalog
		Timeout:             c.BreakerTimeout,
	}
}

// RecommendConfig selects the recommendation profile. The remaining fields
// override the profile only when set in the config file or environment.
type RecommendConfig struct {
	Profile            string        `koanf:"profile"`
	SerendipitousCount int           `koanf:"serendipitous_count"`
	PreferredCount     int           `koanf:"preferred_count"`
	Layout             string        `koanf:"layout"`
	IncludeTopic       bool          `koanf:"include_topic"`
	IncludeToday       bool          `koanf:"include_today"`
	Weather            string        `koanf:"weather"`
	DateLayout         string        `koanf:"date_layout"`
	RequestTimeout     time.Duration `koanf:"request_timeout"`

	// explicit lists the recommend.* keys set above the defaults layer.
	// Nil when the struct was built in code; non-zero fields then count as set.
	explicit map[string]bool
}

func (r RecommendConfig) isSet(key string, nonZero bool) bool {
	if r.explicit != nil {
		return r.explicit[key]
	}
	return nonZero
}

// EngineConfig resolves the profile and applies overrides.
func (r RecommendConfig) EngineConfig() (*recommend.Config, error) {
	profile := r.Profile
	if profile == "" {
		profile = recommend.ProfileMerged
	}
	cfg, err := recommend.ProfileConfig(profile)
	if err != nil {
		return nil, err
	}

	if r.isSet("serendipitous_count", r.SerendipitousCount != 0) {
		cfg.SerendipitousCount = r.SerendipitousCount
	}
	if r.isSet("preferred_count", r.PreferredCount != 0) {
		cfg.PreferredCount = r.PreferredCount
	}
	if r.isSet("layout", r.Layout != "") {
		cfg.Layout = recommend.Layout(r.Layout)
	}
	if r.isSet("include_topic", r.IncludeTopic) {
		cfg.IncludeTopic = r.IncludeTopic
	}
	if r.isSet("include_today", r.IncludeToday) {
		cfg.IncludeToday = r.IncludeToday
	}
	if r.isSet("weather", r.Weather != "") {
		cfg.Weather = r.Weather
	}
	if r.isSet("date_layout", r.DateLayout != "") && r.DateLayout != "" {
		cfg.DateLayout = r.DateLayout
	}
	if r.isSet("request_timeout", r.RequestTimeout != 0) {
		cfg.RequestTimeout = r.RequestTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
