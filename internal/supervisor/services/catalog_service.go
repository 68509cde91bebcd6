// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/config"
	"github.com/tomtom215/serendip/internal/metrics"
)

// CatalogStore is the snapshot holder the service refreshes.
// *catalog.Store implements it.
type CatalogStore interface {
	Current() *catalog.Catalog
	Reload(ctx context.Context, src catalog.Source) (*catalog.Catalog, error)
}

// WatchFunc subscribes to changes of the file at path.
// config.WatchConfigFile is the production implementation.
type WatchFunc func(path string, callback func(err error)) (unwatch func() error, err error)

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// WatchPath is the catalog file to watch. Empty disables watching.
	WatchPath string

	// Watch overrides the file watcher. Default: config.WatchConfigFile
	Watch WatchFunc

	// ReloadInterval triggers periodic reloads. Zero disables them.
	ReloadInterval time.Duration

	// MinGap is the minimum time between two reloads. Zero disables throttling.
	MinGap time.Duration

	// LoadTimeout bounds one load. Default: 30s
	LoadTimeout time.Duration
}

// CatalogService keeps the catalog snapshot fresh under supervision.
//
// Reloads come from three places: file change events, the periodic ticker,
// and Reload calls from the admin API. All of them share one rate limiter so
// an editor saving the file several times in a row costs a single load.
// A failed reload leaves the previous snapshot in place.
type CatalogService struct {
	store   CatalogStore
	source  catalog.Source
	config  CatalogServiceConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string
}

// NewCatalogService creates a catalog refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(store CatalogStore, source catalog.Source, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.Watch == nil {
		cfg.Watch = config.WatchConfigFile
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.MinGap > 0 {
		limit = rate.Every(cfg.MinGap)
	}

	return &CatalogService{
		store:   store,
		source:  source,
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("service", "catalog").Logger(),
		name:    "catalog-service",
	}
}

// Serve implements the suture.Service interface.
//
// An empty store is loaded first; failure returns an error so the supervisor
// retries with backoff. After that the service waits for watch events and
// ticks until ctx is canceled.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("source", s.source.String()).
		Str("watch_path", s.config.WatchPath).
		Dur("reload_interval", s.config.ReloadInterval).
		Dur("min_gap", s.config.MinGap).
		Msg("catalog service starting")

	if s.store.Current() == nil {
		s.limiter.Allow()
		if _, err := s.reload(ctx, "startup"); err != nil {
			return err
		}
	}

	changed := make(chan struct{}, 1)
	if s.config.WatchPath != "" {
		unwatch, err := s.config.Watch(s.config.WatchPath, func(err error) {
			if err != nil {
				s.logger.Warn().Err(err).Msg("catalog watch error")
				return
			}
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("path", s.config.WatchPath).Msg("catalog file watch unavailable")
		} else {
			defer func() {
				if err := unwatch(); err != nil {
					s.logger.Debug().Err(err).Msg("catalog unwatch failed")
				}
			}()
		}
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-changed:
			// Wait out the gap rather than drop the event: the last write
			// of a burst is the one that matters.
			if err := s.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				continue
			}
			_, _ = s.reload(ctx, "watch") //nolint:errcheck // logged in reload

		case <-tick:
			if !s.limiter.Allow() {
				metrics.CatalogReloads.WithLabelValues("throttled").Inc()
				s.logger.Debug().Msg("scheduled catalog reload throttled")
				continue
			}
			_, _ = s.reload(ctx, "interval") //nolint:errcheck // logged in reload
		}
	}
}

// Reload loads the catalog now. It returns catalog.ErrReloadThrottled when
// the previous reload was less than MinGap ago.
func (s *CatalogService) Reload(ctx context.Context) (*catalog.Catalog, error) {
	if !s.limiter.Allow() {
		metrics.CatalogReloads.WithLabelValues("throttled").Inc()
		return nil, catalog.ErrReloadThrottled
	}
	return s.reload(ctx, "api")
}

func (s *CatalogService) reload(ctx context.Context, trigger string) (*catalog.Catalog, error) {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	var previous string
	if prev := s.store.Current(); prev != nil {
		previous = prev.ID()
	}

	c, err := s.store.Reload(loadCtx, s.source)
	if err != nil {
		event := s.logger.Warn()
		if errors.Is(err, context.Canceled) {
			event = s.logger.Debug()
		}
		event.Err(err).
			Str("trigger", trigger).
			Str("active_catalog", previous).
			Msg("catalog reload failed, keeping previous snapshot")
		return nil, err
	}

	s.logger.Info().
		Str("trigger", trigger).
		Str("catalog_id", c.ID()).
		Str("previous_id", previous).
		Int("articles", c.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
	return c, nil
}

// String returns the service name for logging.
func (s *CatalogService) String() string {
	return s.name
}
