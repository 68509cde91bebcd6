// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package api provides the HTTP surface of Serendip.

Routing uses chi (Router.SetupChi). Every route runs behind request ID
assignment, real-IP extraction, panic recovery, CORS, response compression
and Prometheus instrumentation. Recommendation routes are additionally rate
limited per client IP with go-chi/httprate.

Endpoints:

	POST /generate-recommendation        recommendation batch
	POST /api/v1/recommendations         same, versioned path
	GET  /api/v1/recommendations/status  engine counters and active config
	GET  /api/v1/health/live             liveness
	GET  /api/v1/health/ready            readiness (503 until a catalog is loaded)
	GET  /api/v1/catalog                 catalog snapshot statistics
	POST /api/v1/catalog/reload          force a catalog reload
	GET  /metrics                        Prometheus
	GET  /swagger/*                      OpenAPI UI

Request body for the recommendation routes:

	{"preferred": "1", "non_preferred": "Entertainment"}

Each topic may be a survey code (string or number), a survey label, or a
canonical topic key. A successful response is a flat JSON object whose keys
depend on the active profile, for the default profile:

	{"Article1_Title": "...", "Article1_Summary": "...", ..., "Article6_Summary": "..."}

Every failure is a JSON object with a single error field:

	{"error": "Invalid topic names"}

See statusForError for the status code mapping.
*/
package api
