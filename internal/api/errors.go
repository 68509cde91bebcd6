// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/recommend"
	"github.com/tomtom215/serendip/internal/validation"
)

// Client-facing error messages.
const (
	MsgInvalidTopics          = "Invalid topic names"
	MsgNotEnoughSerendipitous = "Not enough serendipitous candidates"
	MsgNotEnoughPreferred     = "Not enough preferred candidates"
	MsgCatalogNotLoaded       = "Catalog not loaded"
	MsgReloadThrottled        = "Catalog reload throttled, try again later"
	MsgReloadUnavailable      = "Catalog reload not available"
	MsgReloadFailed           = "Catalog reload failed"
	MsgInvalidBody            = "Invalid request body"
	MsgRequestTimeout         = "Request timed out"
	MsgRequestCanceled        = "Request canceled"
	MsgTooManyRequests        = "Too many requests"
	MsgNotFound               = "Not found"
	MsgMethodNotAllowed       = "Method not allowed"
	MsgInternal               = "Internal server error"
)

// errInvalidBody marks a body that could not be decoded.
var errInvalidBody = errors.New("invalid request body")

// statusForError maps a domain error to an HTTP status and client message.
//
//	unrecognized topic          400 Invalid topic names
//	body decode or validation   400
//	too few serendipitous       500 Not enough serendipitous candidates
//	too few preferred           500 Not enough preferred candidates
//	no catalog loaded           503
//	reload throttled            429
//	deadline exceeded           504
func statusForError(err error) (int, string) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, recommend.ErrUnrecognizedTopic):
		return http.StatusBadRequest, MsgInvalidTopics
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, MsgInvalidBody
	case errors.Is(err, recommend.ErrInsufficientSerendipitousCandidates):
		return http.StatusInternalServerError, MsgNotEnoughSerendipitous
	case errors.Is(err, recommend.ErrInsufficientPreferredCandidates):
		return http.StatusInternalServerError, MsgNotEnoughPreferred
	case errors.Is(err, catalog.ErrNotLoaded):
		return http.StatusServiceUnavailable, MsgCatalogNotLoaded
	case errors.Is(err, catalog.ErrReloadThrottled):
		return http.StatusTooManyRequests, MsgReloadThrottled
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, MsgRequestTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, MsgRequestCanceled
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
