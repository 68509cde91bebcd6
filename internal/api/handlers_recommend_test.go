// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/recommend"
)

func TestGenerateRecommendation_Success(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, standardStore(t), nil, nil)

	for _, path := range []string{"/generate-recommendation", "/api/v1/recommendations"} {
		t.Run(path, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, path, `{"preferred": "1", "non_preferred": "3"}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", cc)
			}

			var fields map[string]string
			decodeBody(t, rec, &fields)
			if len(fields) != 12 {
				t.Errorf("got %d fields, want 12: %v", len(fields), fields)
			}
			titles := make(map[string]bool)
			for i := 1; i <= 6; i++ {
				title, ok := fields[fmt.Sprintf("Article%d_Title", i)]
				if !ok {
					t.Fatalf("missing Article%d_Title", i)
				}
				if _, ok := fields[fmt.Sprintf("Article%d_Summary", i)]; !ok {
					t.Fatalf("missing Article%d_Summary", i)
				}
				if titles[title] {
					t.Errorf("duplicate article %q", title)
				}
				titles[title] = true
			}
		})
	}
}

func TestGenerateRecommendation_InputShapesAgree(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, standardStore(t), nil, nil)
	bodies := []string{
		`{"preferred": "1", "non_preferred": "3"}`,
		`{"preferred": 1, "non_preferred": 3}`,
		`{"preferred": "Politics", "non_preferred": "Entertainment"}`,
		`{"preferred": "politic", "non_preferred": "ENTERTAINMENT"}`,
	}

	var first string
	for _, body := range bodies {
		rec := srv.do(t, http.MethodPost, "/generate-recommendation", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body = %s", body, rec.Code, rec.Body.String())
		}
		// The injected generator is identical per request, so equal topic
		// pairs produce byte-identical batches.
		if first == "" {
			first = rec.Body.String()
		} else if rec.Body.String() != first {
			t.Errorf("%s produced a different batch", body)
		}
	}
}

func TestGenerateRecommendation_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"unknown code", `{"preferred": 5, "non_preferred": "3"}`, http.StatusBadRequest, MsgInvalidTopics},
		{"unknown label", `{"preferred": "1", "non_preferred": "Weather"}`, http.StatusBadRequest, MsgInvalidTopics},
		{"fractional code", `{"preferred": 1.5, "non_preferred": 2}`, http.StatusBadRequest, MsgInvalidTopics},
		{"missing field", `{"preferred": "1"}`, http.StatusBadRequest, "non_preferred is required"},
		{"null field", `{"preferred": null, "non_preferred": "2"}`, http.StatusBadRequest, "preferred is required"},
		{"malformed json", `{"preferred": `, http.StatusBadRequest, MsgInvalidBody},
		{"not an object", `["1", "2"]`, http.StatusBadRequest, MsgInvalidBody},
	}

	srv := newTestServer(t, standardStore(t), nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := srv.do(t, http.MethodPost, "/generate-recommendation", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := errorMessage(t, rec); got != tt.wantError {
				t.Errorf("error = %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestGenerateRecommendation_EmptyBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, standardStore(t), nil, nil)
	rec := srv.do(t, http.MethodPost, "/generate-recommendation", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorMessage(t, rec); got != MsgInvalidBody {
		t.Errorf("error = %q", got)
	}
}

func TestGenerateRecommendation_InsufficientSerendipitous(t *testing.T) {
	t.Parallel()

	// 12 sport articles: head size 1 cannot supply 2 serendipitous picks.
	articles := append(topicPool(catalog.Sport, 12), topicPool(catalog.Politic, 30)...)
	srv := newTestServer(t, storeWith(t, articles), nil, nil)

	rec := srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "Politics", "non_preferred": "Sports"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := errorMessage(t, rec); got != MsgNotEnoughSerendipitous {
		t.Errorf("error = %q", got)
	}
}

func TestGenerateRecommendation_InsufficientPreferred(t *testing.T) {
	t.Parallel()

	articles := append(topicPool(catalog.Sport, 30), topicPool(catalog.Politic, 3)...)
	srv := newTestServer(t, storeWith(t, articles), nil, nil)

	rec := srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "1", "non_preferred": "2"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := errorMessage(t, rec); got != MsgNotEnoughPreferred {
		t.Errorf("error = %q", got)
	}
}

func TestGenerateRecommendation_NoCatalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, catalog.NewStore(), nil, nil)
	rec := srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "1", "non_preferred": "2"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := errorMessage(t, rec); got != MsgCatalogNotLoaded {
		t.Errorf("error = %q", got)
	}
}

func TestGenerateRecommendation_GroupedProfile(t *testing.T) {
	t.Parallel()

	store := standardStore(t)
	srv := newTestServer(t, store, nil, nil)
	cfg, err := recommend.ProfileConfig(recommend.ProfileGroupedExtended)
	if err != nil {
		t.Fatal(err)
	}
	if err := srv.engine.UpdateConfig(cfg); err != nil {
		t.Fatal(err)
	}

	rec := srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "4", "non_preferred": "2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var fields map[string]string
	decodeBody(t, rec, &fields)
	for _, key := range []string{"Seren_Article2_Topic", "Prefer_Article6_Title", "Prefer_Article1_Topic"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing %s in %v", key, fields)
		}
	}
	if fields["Seren_Article1_Topic"] != "Sport" || fields["Prefer_Article1_Topic"] != "Digital" {
		t.Errorf("topics = %q / %q", fields["Seren_Article1_Topic"], fields["Prefer_Article1_Topic"])
	}
	// Grouped output keeps keys in group order.
	body := rec.Body.String()
	if strings.Index(body, "Seren_Article1_Title") > strings.Index(body, "Prefer_Article1_Title") {
		t.Error("serendipitous group should come first")
	}
}

func TestGetRecommendationStatus(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, standardStore(t), nil, nil)
	srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "1", "non_preferred": "2"}`)
	srv.do(t, http.MethodPost, "/generate-recommendation", `{"preferred": "9", "non_preferred": "2"}`)

	rec := srv.do(t, http.MethodGet, "/api/v1/recommendations/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var status struct {
		Config  recommend.Config  `json:"config"`
		Metrics recommend.Metrics `json:"metrics"`
	}
	decodeBody(t, rec, &status)
	if status.Config.Profile != recommend.ProfileMerged {
		t.Errorf("profile = %q", status.Config.Profile)
	}
	if status.Metrics.Requests != 2 || status.Metrics.Served != 1 || status.Metrics.TopicErrors != 1 {
		t.Errorf("metrics = %+v", status.Metrics)
	}
}
