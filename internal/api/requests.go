// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/serendip/internal/validation"
)

// maxRequestBodyBytes bounds a recommendation request body.
const maxRequestBodyBytes = 64 << 10

// RecommendationRequest is the body of the recommendation endpoints.
//
// Each field accepts a survey code ("1".."4" or 1..4), a survey label
// ("Politics", "Sports", "Entertainment", "Technology") or a canonical topic
// key ("politic", "sport", "entertainment", "digital").
type RecommendationRequest struct {
	Preferred    interface{} `json:"preferred" validate:"required" swaggertype:"string" example:"1"`
	NonPreferred interface{} `json:"non_preferred" validate:"required" swaggertype:"string" example:"Entertainment"`
}

// decodeRecommendationRequest reads and validates the request body.
// Numbers are kept as json.Number so 1 and "1" resolve identically.
func decodeRecommendationRequest(w http.ResponseWriter, r *http.Request) (*RecommendationRequest, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.UseNumber()

	var req RecommendationRequest
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", errInvalidBody)
		}
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err) //nolint:errorlint // decoder detail is for logs only
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}
