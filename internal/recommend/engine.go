// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/serendip/internal/cache"
	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/logging"
	"github.com/tomtom215/serendip/internal/metrics"
)

// SnapshotProvider returns the catalog snapshot to serve from.
// *catalog.Store implements it.
type SnapshotProvider interface {
	Snapshot() (*catalog.Catalog, error)
}

// Request is one recommendation request. Preferred and NonPreferred hold
// the raw decoded values; see ResolveTopic for accepted shapes.
type Request struct {
	Preferred    any
	NonPreferred any
	RequestID    string
}

// Response is a served batch.
type Response struct {
	RequestID string
	Pair      TopicPair
	CatalogID string
	Layout    Layout
	Items     []Item
	Fields    Fields
}

// Metrics is a point-in-time view of engine counters.
type Metrics struct {
	Requests            int64 `json:"requests"`
	Served              int64 `json:"served"`
	TopicErrors         int64 `json:"topic_errors"`
	InsufficientErrors  int64 `json:"insufficient_errors"`
	OtherErrors         int64 `json:"other_errors"`
	LastServedUnixMilli int64 `json:"last_served_unix_ms,omitempty"`
	HeadCacheHits       int64 `json:"head_cache_hits"`
	HeadCacheMisses     int64 `json:"head_cache_misses"`
}

// headKey identifies one ranked serendipity head. Snapshot IDs are unique
// per load, so a reload never hits a stale entry.
type headKey struct {
	catalogID string
	pair      TopicPair
}

// Sized for every topic pair across a few snapshots.
const (
	headCacheCapacity = 64
	headCacheTTL      = time.Hour
)

// Option configures an Engine.
type Option func(*Engine)

// WithRandSource replaces the per-request generator factory.
func WithRandSource(src RandSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.newRand = src
		}
	}
}

// WithClock replaces the clock used for the Today field.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine serves recommendation batches. It is safe for concurrent use.
type Engine struct {
	snapshots SnapshotProvider
	config    atomic.Pointer[Config]
	newRand   RandSource
	now       func() time.Time
	heads     *cache.LRU[headKey, []catalog.Article]
	logger    zerolog.Logger

	requestCount      atomic.Int64
	servedCount       atomic.Int64
	topicErrors       atomic.Int64
	insufficientCount atomic.Int64
	otherErrors       atomic.Int64
	lastServed        atomic.Int64
}

// NewEngine creates an engine reading from snapshots.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snapshots SnapshotProvider, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if snapshots == nil {
		return nil, errors.New("snapshot provider is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		snapshots: snapshots,
		newRand:   NewRand,
		now:       time.Now,
		heads:     cache.NewLRU[headKey, []catalog.Article](headCacheCapacity, headCacheTTL),
		logger:    logger.With().Str("component", "recommend").Logger(),
	}
	e.config.Store(cfg.Clone())
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Recommend resolves the request topics and builds one batch.
//
// Errors wrap ErrUnrecognizedTopic (as *TopicError),
// ErrInsufficientSerendipitousCandidates, ErrInsufficientPreferredCandidates,
// catalog.ErrNotLoaded, or the context error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)
	cfg := e.config.Load()

	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	logger := e.logger.With().Str("request_id", req.RequestID).Logger()

	resp, err := e.recommend(ctx, cfg, req)
	if err != nil {
		outcome := e.countError(err)
		metrics.RecordRecommendation(string(cfg.Layout), outcome, time.Since(start))
		logger.Debug().
			Err(err).
			Str("preferred", logging.SanitizeValue(fmt.Sprint(req.Preferred))).
			Str("non_preferred", logging.SanitizeValue(fmt.Sprint(req.NonPreferred))).
			Str("outcome", outcome).
			Msg("recommendation failed")
		return nil, err
	}

	e.servedCount.Add(1)
	e.lastServed.Store(time.Now().UnixMilli())
	metrics.RecordRecommendation(string(cfg.Layout), "success", time.Since(start))
	metrics.RecordTopicPair(resp.Pair.Preferred.String(), resp.Pair.NonPreferred.String())

	logger.Debug().
		Str("preferred", resp.Pair.Preferred.String()).
		Str("non_preferred", resp.Pair.NonPreferred.String()).
		Str("catalog_id", resp.CatalogID).
		Int("articles", len(resp.Items)).
		Dur("latency", time.Since(start)).
		Msg("recommendation served")

	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(ctx context.Context, cfg *Config, req Request) (*Response, error) {
	pair, err := ResolvePair(req.Preferred, req.NonPreferred)
	if err != nil {
		return nil, err
	}

	snap, err := e.snapshots.Snapshot()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := e.newRand()

	serendipitous, err := sampleHead(e.serendipityHead(snap, pair), cfg.SerendipitousCount, rng)
	if err != nil {
		return nil, err
	}
	preferred, err := SelectPreferred(snap, pair.Preferred, cfg.PreferredCount, serendipitous, rng)
	if err != nil {
		return nil, err
	}

	asm := NewAssembler(cfg, e.now)
	items := asm.Order(serendipitous, preferred, rng)

	return &Response{
		RequestID: req.RequestID,
		Pair:      pair,
		CatalogID: snap.ID(),
		Layout:    cfg.Layout,
		Items:     items,
		Fields:    asm.Fields(items),
	}, nil
}

// serendipityHead returns the ranked head for pair, ranking at most once per
// snapshot. The cached slice is shared and only ever read.
func (e *Engine) serendipityHead(snap *catalog.Catalog, pair TopicPair) []catalog.Article {
	head, hit := e.heads.GetOrAdd(headKey{catalogID: snap.ID(), pair: pair}, func() []catalog.Article {
		return SerendipityHead(snap, pair)
	})
	if hit {
		metrics.RecommendationHeadCache.WithLabelValues("hit").Inc()
	} else {
		metrics.RecommendationHeadCache.WithLabelValues("miss").Inc()
	}
	return head
}

// countError classifies err for counters and the outcome metric label.
func (e *Engine) countError(err error) string {
	switch {
	case errors.Is(err, ErrUnrecognizedTopic):
		e.topicErrors.Add(1)
		return "invalid_topic"
	case errors.Is(err, ErrInsufficientSerendipitousCandidates):
		e.insufficientCount.Add(1)
		return "insufficient_serendipitous"
	case errors.Is(err, ErrInsufficientPreferredCandidates):
		e.insufficientCount.Add(1)
		return "insufficient_preferred"
	case errors.Is(err, catalog.ErrNotLoaded):
		e.otherErrors.Add(1)
		return "not_loaded"
	default:
		e.otherErrors.Add(1)
		return "error"
	}
}

// GetMetrics returns current engine counters.
func (e *Engine) GetMetrics() Metrics {
	hits, misses, _ := e.heads.Stats()
	return Metrics{
		Requests:            e.requestCount.Load(),
		Served:              e.servedCount.Load(),
		TopicErrors:         e.topicErrors.Load(),
		InsufficientErrors:  e.insufficientCount.Load(),
		OtherErrors:         e.otherErrors.Load(),
		LastServedUnixMilli: e.lastServed.Load(),
		HeadCacheHits:       hits,
		HeadCacheMisses:     misses,
	}
}

// GetConfig returns a copy of the active configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Load().Clone()
}

// UpdateConfig validates and swaps in a new configuration. Requests already
// in flight finish with the config they started with.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	e.config.Store(cfg.Clone())
	e.logger.Info().
		Str("profile", cfg.Profile).
		Str("layout", string(cfg.Layout)).
		Int("serendipitous_count", cfg.SerendipitousCount).
		Int("preferred_count", cfg.PreferredCount).
		Msg("recommendation config updated")
	return nil
}
