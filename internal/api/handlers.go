// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"context"
	"time"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/recommend"
)

// CatalogReloader forces a catalog reload. services.CatalogService
// implements it; a nil reloader disables POST /api/v1/catalog/reload.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// Handler serves every API endpoint.
type Handler struct {
	engine    *recommend.Engine
	store     *catalog.Store
	reloader  CatalogReloader
	startTime time.Time
}

// NewHandler creates a handler. reloader may be nil.
func NewHandler(engine *recommend.Engine, store *catalog.Store, reloader CatalogReloader) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		reloader:  reloader,
		startTime: time.Now(),
	}
}

// CatalogStats describes a catalog snapshot.
type CatalogStats struct {
	ID       string         `json:"id" example:"3f1c9a52-8a3e-4b7d-9b0e-2f1d4c5e6a7b"`
	Source   string         `json:"source" example:"xlsx:Augmented_Dataset_with_Relevance.xlsx"`
	LoadedAt time.Time      `json:"loaded_at"`
	Articles int            `json:"articles" example:"1200"`
	Topics   map[string]int `json:"topics"`
}

func newCatalogStats(c *catalog.Catalog) *CatalogStats {
	topics := make(map[string]int)
	for t, n := range c.TopicCounts() {
		topics[t.String()] = n
	}
	return &CatalogStats{
		ID:       c.ID(),
		Source:   c.Source(),
		LoadedAt: c.LoadedAt(),
		Articles: c.Len(),
		Topics:   topics,
	}
}
