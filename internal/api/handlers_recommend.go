// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/serendip/internal/middleware"
	"github.com/tomtom215/serendip/internal/recommend"
)

// GenerateRecommendation handles recommendation batch requests.
//
// @Summary Generate a serendipitous recommendation batch
// @Description Returns serendipitous articles from the non-preferred topic that lean toward the preferred topic, plus random preferred-topic articles. The response is a flat object; its keys depend on the deployment profile.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Preferred and non-preferred topics"
// @Success 200 {object} map[string]string "Article1_Title, Article1_Summary, ..."
// @Failure 400 {object} ErrorResponse "Invalid topic names"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Not enough serendipitous or preferred candidates"
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /generate-recommendation [post]
// @Router /api/v1/recommendations [post]
func (h *Handler) GenerateRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if timeout := h.engine.GetConfig().RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := decodeRecommendationRequest(w, r)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Preferred:    req.Preferred,
		NonPreferred: req.NonPreferred,
		RequestID:    middleware.GetRequestID(ctx),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp.Fields)
}

// RecommendationStatus is the body of GET /api/v1/recommendations/status.
type RecommendationStatus struct {
	Config  *recommend.Config `json:"config"`
	Metrics recommend.Metrics `json:"metrics"`
}

// GetRecommendationStatus reports engine counters and the active config.
//
// @Summary Recommendation engine status
// @Tags Recommendations
// @Produce json
// @Success 200 {object} RecommendationStatus
// @Router /api/v1/recommendations/status [get]
func (h *Handler) GetRecommendationStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RecommendationStatus{
		Config:  h.engine.GetConfig(),
		Metrics: h.engine.GetMetrics(),
	})
}
