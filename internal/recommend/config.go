// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Layout selects the response shape.
type Layout string

const (
	// LayoutMerged shuffles both groups into one list: Article{i}_Title.
	LayoutMerged Layout = "merged"

	// LayoutGrouped keeps the groups apart: Seren_Article{i}_Title, Prefer_Article{i}_Title.
	LayoutGrouped Layout = "grouped"
)

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	return l == LayoutMerged || l == LayoutGrouped
}

// Profile names.
const (
	ProfileMerged          = "merged"
	ProfileMergedTopics    = "merged-topics"
	ProfileMergedExtended  = "merged-extended"
	ProfileGrouped         = "grouped"
	ProfileGroupedExtended = "grouped-extended"
)

// Defaults shared by every profile.
const (
	DefaultDateLayout     = "January 2, 2006"
	DefaultWeather        = "Sunny, 22°C"
	DefaultRequestTimeout = 10 * time.Second
)

// Config controls batch size and output shape.
type Config struct {
	// Profile is the name the config was derived from. Informational.
	Profile string `json:"profile"`

	// SerendipitousCount is k, the number of serendipitous articles.
	SerendipitousCount int `json:"serendipitous_count"`

	// PreferredCount is n, the number of preferred articles.
	PreferredCount int `json:"preferred_count"`

	Layout Layout `json:"layout"`

	// IncludeTopic adds *_Topic fields with the display form of the topic.
	IncludeTopic bool `json:"include_topic"`

	// IncludeToday adds a Today field formatted with DateLayout.
	IncludeToday bool `json:"include_today"`

	// Weather, when not empty, is emitted verbatim as the Weather field.
	Weather string `json:"weather,omitempty"`

	DateLayout string `json:"date_layout"`

	// RequestTimeout bounds one recommendation request at the HTTP boundary.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// profiles holds the deployment variants.
var profiles = map[string]Config{
	ProfileMerged: {
		SerendipitousCount: 2,
		PreferredCount:     4,
		Layout:             LayoutMerged,
	},
	ProfileMergedTopics: {
		SerendipitousCount: 2,
		PreferredCount:     4,
		Layout:             LayoutMerged,
		IncludeTopic:       true,
		IncludeToday:       true,
		Weather:            DefaultWeather,
	},
	ProfileMergedExtended: {
		SerendipitousCount: 2,
		PreferredCount:     6,
		Layout:             LayoutMerged,
	},
	ProfileGrouped: {
		SerendipitousCount: 2,
		PreferredCount:     4,
		Layout:             LayoutGrouped,
	},
	ProfileGroupedExtended: {
		SerendipitousCount: 2,
		PreferredCount:     6,
		Layout:             LayoutGrouped,
		IncludeTopic:       true,
	},
}

// Profiles lists the known profile names, sorted.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileConfig returns the config for a named profile.
func ProfileConfig(name string) (*Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := profiles[key]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(Profiles(), ", "))
	}
	cfg := p
	cfg.Profile = key
	cfg.DateLayout = DefaultDateLayout
	cfg.RequestTimeout = DefaultRequestTimeout
	return &cfg, nil
}

// DefaultConfig returns the merged profile.
func DefaultConfig() *Config {
	cfg, _ := ProfileConfig(ProfileMerged) //nolint:errcheck // built-in profile
	return cfg
}

// BatchSize is the total number of articles in one response.
func (c *Config) BatchSize() int {
	return c.SerendipitousCount + c.PreferredCount
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.SerendipitousCount < 1 {
		return fmt.Errorf("serendipitous_count must be at least 1, got %d", c.SerendipitousCount)
	}
	if c.PreferredCount < 1 {
		return fmt.Errorf("preferred_count must be at least 1, got %d", c.PreferredCount)
	}
	if !c.Layout.Valid() {
		return fmt.Errorf("layout must be %q or %q, got %q", LayoutMerged, LayoutGrouped, c.Layout)
	}
	if c.IncludeToday && c.DateLayout == "" {
		return fmt.Errorf("date_layout is required when include_today is set")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %v", c.RequestTimeout)
	}
	return nil
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
