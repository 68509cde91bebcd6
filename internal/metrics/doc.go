// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendations_total{layout, outcome}
  - recommendation_duration_seconds
  - recommendation_topic_pairs_total{preferred, non_preferred}

Catalog:
  - catalog_articles
  - catalog_pool_size{topic}
  - catalog_reloads_total{result}
  - catalog_reload_duration_seconds

Circuit breaker:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_transitions_total{name, from_state, to_state}

All collectors are registered with the default registry via promauto.
*/
package metrics
