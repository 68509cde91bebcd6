// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking, propagated to the logging context
  - Prometheus Metrics: HTTP request/response instrumentation

Both are chi-compatible (func(http.Handler) http.Handler):

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.With(middleware.PrometheusMetrics).Post("/generate-recommendation", h.GenerateRecommendation)

Request IDs:

An X-Request-ID header from an upstream proxy is kept when it is at most 128
printable ASCII characters; anything else is replaced with a fresh UUID so it
cannot inject into logs. Handlers read it with GetRequestID or log through
logging.Ctx(r.Context()).

Metric Labels:

PrometheusMetrics labels by chi route pattern ("/api/v1/catalog"), so it must
run inside a chi router. Requests that match no route are labelled
"unmatched".

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
