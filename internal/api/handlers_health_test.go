// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/serendip/internal/catalog"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, catalog.NewStore(), nil, nil)
	rec := srv.do(t, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var status HealthStatus
	decodeBody(t, rec, &status)
	if status.Status != "alive" {
		t.Errorf("status = %q", status.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore()
	srv := newTestServer(t, store, nil, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before load = %d, want 503", rec.Code)
	}
	var status HealthStatus
	decodeBody(t, rec, &status)
	if status.Status != "not_ready" || status.Error != MsgCatalogNotLoaded {
		t.Errorf("body = %+v", status)
	}

	c, err := catalog.New(topicPool(catalog.Digital, 5), "test")
	if err != nil {
		t.Fatal(err)
	}
	store.Swap(c)

	rec = srv.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status after load = %d, want 200", rec.Code)
	}
	status = HealthStatus{}
	decodeBody(t, rec, &status)
	if status.Status != "ready" || status.Profile != "merged" {
		t.Errorf("body = %+v", status)
	}
	if status.Catalog == nil || status.Catalog.Articles != 5 || status.Catalog.ID != c.ID() {
		t.Errorf("catalog = %+v", status.Catalog)
	}
	if status.Catalog.Topics["digital"] != 5 || status.Catalog.Topics["sport"] != 0 {
		t.Errorf("topics = %v", status.Catalog.Topics)
	}
}

func TestGetCatalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, catalog.NewStore(), nil, nil)
	if rec := srv.do(t, http.MethodGet, "/api/v1/catalog", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("empty store status = %d, want 503", rec.Code)
	}

	srv = newTestServer(t, standardStore(t), nil, nil)
	rec := srv.do(t, http.MethodGet, "/api/v1/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats CatalogStats
	decodeBody(t, rec, &stats)
	if stats.Articles != 120 || stats.Source != "test" || len(stats.Topics) != 4 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestReloadCatalog(t *testing.T) {
	t.Parallel()

	fresh, err := catalog.New(topicPool(catalog.Politic, 8), "reloaded")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		reloader   CatalogReloader
		wantStatus int
		wantError  string
	}{
		{"no reloader", nil, http.StatusServiceUnavailable, MsgReloadUnavailable},
		{"success", &stubReloader{snap: fresh}, http.StatusOK, ""},
		{"throttled", &stubReloader{err: catalog.ErrReloadThrottled}, http.StatusTooManyRequests, MsgReloadThrottled},
		{"source failure", &stubReloader{err: errors.New("open articles.xlsx: no such file")}, http.StatusBadGateway, MsgReloadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, standardStore(t), tt.reloader, nil)
			rec := srv.do(t, http.MethodPost, "/api/v1/catalog/reload", "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantError != "" {
				if got := errorMessage(t, rec); got != tt.wantError {
					t.Errorf("error = %q, want %q", got, tt.wantError)
				}
				return
			}
			var stats CatalogStats
			decodeBody(t, rec, &stats)
			if stats.ID != fresh.ID() || stats.Articles != 8 {
				t.Errorf("stats = %+v", stats)
			}
		})
	}
}
