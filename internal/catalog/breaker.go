// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/serendip/internal/logging"
	"github.com/tomtom215/serendip/internal/metrics"
)

// BreakerConfig tunes the circuit breaker around a Source.
type BreakerConfig struct {
	// ConsecutiveFailures opens the circuit. Default: 3
	ConsecutiveFailures uint32

	// Timeout is how long the circuit stays open before a trial load. Default: 1m
	Timeout time.Duration
}

// BreakerSource guards a Source with a circuit breaker. While open, Load
// fails fast with gobreaker.ErrOpenState and the inner source is not touched.
type BreakerSource struct {
	inner Source
	cb    *gobreaker.CircuitBreaker[[]Article]
	name  string
}

var _ Source = (*BreakerSource)(nil)

// NewBreakerSource wraps inner.
func NewBreakerSource(inner Source, cfg BreakerConfig) *BreakerSource {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	name := "catalog-source"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	threshold := cfg.ConsecutiveFailures
	cb := gobreaker.NewCircuitBreaker[[]Article](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("catalog source circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerSource{inner: inner, cb: cb, name: name}
}

// Load implements Source.
func (b *BreakerSource) Load(ctx context.Context) ([]Article, error) {
	articles, err := b.cb.Execute(func() ([]Article, error) {
		return b.inner.Load(ctx)
	})
	if err != nil && (errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	}
	return articles, err
}

// State exposes the breaker state for health reporting.
func (b *BreakerSource) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerSource) String() string { return b.inner.String() }

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
