// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package supervisor provides process supervision for Serendip using suture v4.

# Overview

The tree has two layers so a misbehaving catalog source cannot take the API
down with it:

	RootSupervisor ("serendip")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The API always serves from the last snapshot the data layer installed. If
the catalog source keeps failing, CatalogService is restarted with backoff
while requests continue.

# Usage Example

	slogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.Timeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(catalogSvc)
	tree.AddAPIService(httpSvc)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

# Configuration

TreeConfig controls restart behavior. Zero fields take suture's defaults:

  - FailureThreshold: 5 failures before backoff
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Debugging Shutdown Issues

Services that ignore cancellation past ShutdownTimeout are reported by
UnstoppedServiceReport:

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
	    for _, svc := range unstopped {
	        logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
	    }
	}

Supervisor events (start, failure, backoff) go through sutureslog into the
zerolog stream via logging.NewSlogLogger.
*/
package supervisor
