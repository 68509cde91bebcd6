// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/serendip/internal/logging"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid topic names"`
}

// writeJSON encodes v with status. Responses are never cached: a
// recommendation is a fresh random draw on every call.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + MsgInternal + `"}`)) //nolint:errcheck // best effort
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message}. err, when set, is logged with the
// request ID; server-side failures at error level, client mistakes at debug.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context())
		event := logger.Debug()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Int("status", status).
			Str("path", r.URL.Path).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API error")
	}
	writeJSON(w, status, ErrorResponse{Error: message})
}

// respondDomainError maps err with statusForError and writes it.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusForError(err)
	respondError(w, r, status, message, err)
}
