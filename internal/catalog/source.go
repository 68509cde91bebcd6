// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source produces the raw article rows of a catalog.
// Implementations must be safe to call repeatedly; each call re-reads the data.
type Source interface {
	// Load reads every article in catalog order.
	Load(ctx context.Context) ([]Article, error)

	// String describes the source for logs and snapshot metadata.
	String() string
}

// Supported source formats.
const (
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatPostgres = "postgres"
)

// SourceConfig selects and configures a Source.
type SourceConfig struct {
	// Path is the catalog file. Unused for postgres.
	Path string

	// Format overrides detection from the file extension.
	Format string

	// Sheet selects the spreadsheet tab for xlsx. Default: first sheet.
	Sheet string

	// DSN is the postgres connection string.
	DSN string

	// Table is the postgres table, optionally schema-qualified.
	Table string

	// OrderBy is the postgres column that defines catalog order.
	// Default: ArticleID
	OrderBy string

	// StripHTML removes markup from titles and summaries.
	StripHTML bool
}

// DetectFormat returns the explicit format or derives it from the path.
func (c SourceConfig) DetectFormat() (string, error) {
	if c.Format != "" {
		f := strings.ToLower(c.Format)
		switch f {
		case FormatCSV, FormatXLSX, FormatJSON, FormatYAML, FormatPostgres:
			return f, nil
		case "yml":
			return FormatYAML, nil
		case "postgresql", "pg":
			return FormatPostgres, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}

	if c.DSN != "" && c.Path == "" {
		return FormatPostgres, nil
	}

	switch ext := strings.ToLower(filepath.Ext(c.Path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnsupportedFormat, c.Path)
	}
}

// NewSource builds the Source described by cfg.
func NewSource(cfg SourceConfig) (Source, error) {
	format, err := cfg.DetectFormat()
	if err != nil {
		return nil, err
	}

	opts := DecodeOptions{StripHTML: cfg.StripHTML}

	switch format {
	case FormatCSV:
		return NewCSVSource(cfg.Path, opts), nil
	case FormatXLSX:
		return NewXLSXSource(cfg.Path, cfg.Sheet, opts), nil
	case FormatJSON:
		return NewJSONSource(cfg.Path, opts), nil
	case FormatYAML:
		return NewYAMLSource(cfg.Path, opts), nil
	case FormatPostgres:
		return NewPostgresSource(PostgresConfig{
			DSN:       cfg.DSN,
			Table:     cfg.Table,
			OrderBy:   cfg.OrderBy,
			StripHTML: cfg.StripHTML,
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// IsFileSource reports whether the configured source reads a local file that
// can be watched for changes.
func (c SourceConfig) IsFileSource() bool {
	format, err := c.DetectFormat()
	return err == nil && format != FormatPostgres && c.Path != ""
}
