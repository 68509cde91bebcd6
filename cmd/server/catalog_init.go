// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/config"
	"github.com/tomtom215/serendip/internal/logging"
	"github.com/tomtom215/serendip/internal/supervisor/services"
)

// CatalogComponents holds the catalog store and the service that keeps it fresh.
type CatalogComponents struct {
	Store   *catalog.Store
	Source  catalog.Source
	Service *services.CatalogService

	closer io.Closer
}

// initCatalog builds the configured source behind a circuit breaker and
// performs the first load. The server does not start without a catalog.
func initCatalog(ctx context.Context, cfg *config.CatalogConfig) (*CatalogComponents, error) {
	srcCfg := cfg.SourceConfig()
	inner, err := catalog.NewSource(srcCfg)
	if err != nil {
		return nil, fmt.Errorf("build catalog source: %w", err)
	}

	components := &CatalogComponents{
		Store:  catalog.NewStore(),
		Source: catalog.NewBreakerSource(inner, cfg.BreakerConfig()),
	}
	if c, ok := inner.(io.Closer); ok {
		components.closer = c
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	snap, err := components.Store.Reload(loadCtx, components.Source)
	if err != nil {
		components.Close()
		return nil, err
	}

	logging.Info().
		Str("source", snap.Source()).
		Str("catalog_id", snap.ID()).
		Int("articles", snap.Len()).
		Interface("topics", snap.TopicCounts()).
		Msg("Catalog loaded")

	svcCfg := services.CatalogServiceConfig{
		ReloadInterval: cfg.ReloadInterval,
		MinGap:         cfg.ReloadMinGap,
		LoadTimeout:    cfg.LoadTimeout,
	}
	if cfg.Watch && srcCfg.IsFileSource() {
		svcCfg.WatchPath = cfg.Path
	}
	components.Service = services.NewCatalogService(
		components.Store,
		components.Source,
		svcCfg,
		logging.WithComponent("catalog"),
	)

	return components, nil
}

// Close releases the source's resources (the postgres pool).
func (c *CatalogComponents) Close() {
	if c.closer == nil {
		return
	}
	if err := c.closer.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing catalog source")
	}
}
