// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package main is the entry point for the Serendip server.

Serendip serves small batches of news articles: a few from the reader's
preferred topic plus a couple of "serendipitous" picks from a topic they
said they were not interested in, chosen from the articles most relevant to
their preferred topic.

# Application Architecture

	RootSupervisor ("serendip")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService (file watch, periodic reload)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, .env, environment)
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: source selected by format, wrapped in a circuit breaker, loaded once
 4. Recommendation engine: profile plus explicit overrides
 5. HTTP: chi router with CORS, rate limiting and Prometheus instrumentation
 6. Supervisor tree: Suture v4

The process exits if the first catalog load fails. Later reload failures
keep the previous catalog.

# Configuration

	Priority: Environment variables > .env > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Catalog
	CATALOG_PATH=Augmented_Dataset_with_Relevance.xlsx
	CATALOG_FORMAT=              # csv, xlsx, json, yaml, postgres (default: extension)
	CATALOG_DSN=                 # postgres connection string
	CATALOG_WATCH=true
	CATALOG_RELOAD_INTERVAL=0    # 0 disables periodic reloads

	# Recommendations
	RECOMMEND_PROFILE=merged     # merged, merged-topics, merged-extended, grouped, grouped-extended
	RECOMMEND_PREFERRED_COUNT=   # overrides the profile when set

See internal/config for the complete list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to 10s, the catalog watcher is released, and services that
did not stop in time are reported.

# Usage Examples

Development:

	export LOG_FORMAT=console CATALOG_PATH=./testdata/articles.csv
	go run ./cmd/server

	curl -s -X POST localhost:8080/generate-recommendation \
	  -d '{"preferred": "sport", "non_preferred": 1}'

Postgres catalog:

	export CATALOG_DSN=postgres://serendip@db/serendip?sslmode=disable
	export CATALOG_TABLE=articles CATALOG_RELOAD_INTERVAL=10m
	./serendip

# API Documentation

Swagger documentation is served at /swagger/index.html.
*/
package main
