// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/recommend"
)

func testArticle(id string, primary catalog.Topic, politic float64) catalog.Article {
	return catalog.Article{
		ID:           id,
		Title:        "Title " + id,
		Summary:      "Summary " + id,
		PrimaryTopic: primary,
		Relevance: map[catalog.Topic]float64{
			catalog.Politic:       politic,
			catalog.Sport:         0.1,
			catalog.Entertainment: 0.1,
			catalog.Digital:       0.1,
		},
	}
}

// topicPool returns n articles of one topic with descending politic scores.
func topicPool(t catalog.Topic, n int) []catalog.Article {
	out := make([]catalog.Article, n)
	for i := range out {
		out[i] = testArticle(fmt.Sprintf("%s-%02d", t, i), t, float64(n-i)/float64(n))
	}
	return out
}

// standardStore holds 30 articles per topic, enough for every profile.
func standardStore(t *testing.T) *catalog.Store {
	t.Helper()
	var articles []catalog.Article
	for _, topic := range catalog.AllTopics() {
		articles = append(articles, topicPool(topic, 30)...)
	}
	return storeWith(t, articles)
}

func storeWith(t *testing.T, articles []catalog.Article) *catalog.Store {
	t.Helper()
	c, err := catalog.New(articles, "test")
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	store := catalog.NewStore()
	store.Swap(c)
	return store
}

func newTestEngine(t *testing.T, store *catalog.Store, cfg *recommend.Config) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(store, cfg, zerolog.Nop(),
		recommend.WithRandSource(func() recommend.Rand { return rand.New(rand.NewPCG(1, 2)) }))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

// stubReloader is a hand-written CatalogReloader.
type stubReloader struct {
	snap  *catalog.Catalog
	err   error
	calls int
}

func (s *stubReloader) Reload(context.Context) (*catalog.Catalog, error) {
	s.calls++
	return s.snap, s.err
}

type testServer struct {
	handler http.Handler
	store   *catalog.Store
	engine  *recommend.Engine
}

func newTestServer(t *testing.T, store *catalog.Store, reloader CatalogReloader, mw *ChiMiddleware) *testServer {
	t.Helper()
	engine := newTestEngine(t, store, nil)
	if mw == nil {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		mw = NewChiMiddleware(cfg)
	}
	router := NewRouter(NewHandler(engine, store, reloader), mw)
	return &testServer{handler: router.SetupChi(), store: store, engine: engine}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	decodeBody(t, rec, &body)
	return body.Error
}
