// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/serendip/internal/metrics"
)

func TestStore_SnapshotBeforeLoad(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if s.Current() != nil {
		t.Error("Current() should be nil before load")
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Snapshot() error = %v, want ErrNotLoaded", err)
	}
}

func TestStore_Reload(t *testing.T) {
	s := NewStore()
	src := &stubSource{articles: []Article{
		testArticle("a", Sport),
		testArticle("b", Politic),
	}}

	before := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("success"))

	c, err := s.Reload(context.Background(), src)
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if c.Len() != 2 || c.Source() != "stub" {
		t.Errorf("unexpected catalog: len=%d source=%q", c.Len(), c.Source())
	}

	snap, err := s.Snapshot()
	if err != nil || snap != c {
		t.Fatalf("Snapshot() = %p, %v; want %p", snap, err, c)
	}

	if got := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("success")); got != before+1 {
		t.Errorf("success reloads = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(metrics.CatalogPoolSize.WithLabelValues("sport")); got != 1 {
		t.Errorf("sport pool gauge = %v, want 1", got)
	}
}

func TestStore_ReloadFailureKeepsSnapshot(t *testing.T) {
	s := NewStore()
	good := &stubSource{articles: []Article{testArticle("a", Sport)}}
	first, err := s.Reload(context.Background(), good)
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	before := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("failure"))

	if _, err := s.Reload(context.Background(), &stubSource{err: errSourceDown}); !errors.Is(err, errSourceDown) {
		t.Errorf("Reload() error = %v, want errSourceDown", err)
	}
	if _, err := s.Reload(context.Background(), &stubSource{articles: []Article{testArticle("a", Sport), testArticle("a", Sport)}}); !errors.Is(err, ErrDuplicateArticle) {
		t.Errorf("Reload() error = %v, want ErrDuplicateArticle", err)
	}

	if s.Current() != first {
		t.Error("failed reload replaced the snapshot")
	}
	if got := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("failure")); got != before+2 {
		t.Errorf("failure reloads = %v, want %v", got, before+2)
	}
}

func TestStore_ConcurrentReadsDuringSwap(t *testing.T) {
	s := NewStore()
	first, err := New([]Article{testArticle("a", Sport)}, "first")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	second, err := New([]Article{testArticle("b", Sport), testArticle("c", Sport)}, "second")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Swap(first)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c := s.Current()
				// A reader sees one whole snapshot, never a mix.
				if n := c.PoolSize(Sport); n != c.Len() {
					t.Errorf("inconsistent snapshot: pool=%d len=%d", n, c.Len())
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		if j%2 == 0 {
			s.Swap(second)
		} else {
			s.Swap(first)
		}
	}
	wg.Wait()

	if prev := s.Swap(first); prev == nil {
		t.Error("Swap() should return the previous snapshot")
	}
}
