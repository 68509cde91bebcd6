// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

// Package main provides the Serendip HTTP server
//
// @title Serendip API
// @version 1.0
// @description Serendipitous news article recommendations.
// @description
// @description ## Topics
// @description
// @description Topic fields accept a survey code (`1`..`4`, as number or string), a survey label
// @description (`Politics`, `Sports`, `Entertainment`, `Technology`) or a canonical key
// @description (`politic`, `sport`, `entertainment`, `digital`). Matching is case-insensitive.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on the recommendation routes.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {"error": "Invalid topic names"}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/serendip/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Recommendation batches and engine status
//
// @tag.name Catalog
// @tag.description Article catalog statistics and reloads
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
