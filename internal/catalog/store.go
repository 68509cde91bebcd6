// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/serendip/internal/metrics"
)

// Store holds the current catalog snapshot.
//
// Reads are a single atomic load. Reload serializes concurrent reloads so two
// slow loads cannot race each other into the pointer out of order.
type Store struct {
	current atomic.Pointer[Catalog]
	reload  sync.Mutex
}

// NewStore returns an empty store. Current returns nil until the first load.
func NewStore() *Store {
	return &Store{}
}

// Current returns the active snapshot, or nil if nothing has been loaded.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Snapshot returns the active snapshot or ErrNotLoaded.
func (s *Store) Snapshot() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrNotLoaded
	}
	return c, nil
}

// Swap installs c and returns the snapshot it replaced.
func (s *Store) Swap(c *Catalog) *Catalog {
	prev := s.current.Swap(c)
	if c != nil {
		metrics.CatalogArticles.Set(float64(c.Len()))
		for t, n := range c.TopicCounts() {
			metrics.CatalogPoolSize.WithLabelValues(t.String()).Set(float64(n))
		}
	}
	return prev
}

// Reload loads src, builds a new snapshot and swaps it in.
// On any error the previous snapshot stays active.
func (s *Store) Reload(ctx context.Context, src Source) (*Catalog, error) {
	s.reload.Lock()
	defer s.reload.Unlock()

	start := time.Now()
	articles, err := src.Load(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("load %s: %w", src, err)
	}

	c, err := New(articles, src.String())
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("build catalog from %s: %w", src, err)
	}

	s.Swap(c)
	metrics.CatalogReloads.WithLabelValues("success").Inc()
	metrics.CatalogReloadDuration.Observe(time.Since(start).Seconds())
	return c, nil
}
