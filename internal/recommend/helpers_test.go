// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tomtom215/serendip/internal/catalog"
)

// seededRand returns a deterministic generator source. Every call hands out
// a fresh generator so requests stay independent, as in production.
func seededRand(seed uint64) RandSource {
	var n uint64
	return func() Rand {
		n++
		return rand.New(rand.NewPCG(seed, n))
	}
}

// article builds a valid article. rel holds explicit scores; other topics get 0.
func article(id string, primary catalog.Topic, rel map[catalog.Topic]float64) catalog.Article {
	scores := make(map[catalog.Topic]float64, 4)
	for _, t := range catalog.AllTopics() {
		scores[t] = rel[t]
	}
	return catalog.Article{
		ID:           id,
		Title:        "Title " + id,
		Summary:      "Summary " + id,
		PrimaryTopic: primary,
		Relevance:    scores,
	}
}

// pool builds n articles of topic whose relevance to scored decreases with
// the index: id0 is the most relevant.
func pool(prefix string, topic catalog.Topic, n int, scored catalog.Topic) []catalog.Article {
	out := make([]catalog.Article, n)
	for i := range out {
		out[i] = article(fmt.Sprintf("%s%d", prefix, i), topic, map[catalog.Topic]float64{
			scored: float64(n-i) / float64(n),
		})
	}
	return out
}

func newCatalog(t *testing.T, groups ...[]catalog.Article) *catalog.Catalog {
	t.Helper()
	var all []catalog.Article
	for _, g := range groups {
		all = append(all, g...)
	}
	c, err := catalog.New(all, "test")
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

// standardCatalog has 30 articles per topic, each pool ranked against
// every other topic in index order.
func standardCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var groups [][]catalog.Article
	for _, topic := range catalog.AllTopics() {
		g := make([]catalog.Article, 30)
		for i := range g {
			rel := make(map[catalog.Topic]float64, 4)
			for _, other := range catalog.AllTopics() {
				rel[other] = float64(30-i) / 30
			}
			g[i] = article(fmt.Sprintf("%s-%02d", topic, i), topic, rel)
		}
		groups = append(groups, g)
	}
	return newCatalog(t, groups...)
}

// snapshot is a fixed SnapshotProvider.
type snapshot struct {
	c   *catalog.Catalog
	err error
}

func (s snapshot) Snapshot() (*catalog.Catalog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.c, nil
}

func ids(articles []catalog.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}
