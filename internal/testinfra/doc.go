// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

// Package testinfra provides container helpers for integration tests.
//
// It uses testcontainers-go to start throwaway services so catalog sources
// can be exercised against the real thing instead of a mock.
//
// # Postgres Container
//
//	func TestPostgresSource(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    pg, err := testinfra.NewPostgresContainer(ctx,
//	        testinfra.WithInitScript(seedSQL),
//	    )
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//
//	    src, _ := catalog.NewPostgresSource(catalog.PostgresConfig{DSN: pg.DSN})
//	    articles, err := src.Load(ctx)
//	}
//
// # Build Tags
//
// Every file in this package is behind the integration build tag:
//
//	go test -tags integration ./internal/catalog/...
//
// Tests skip themselves when no Docker daemon is reachable.
package testinfra
