// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package services provides suture.Service wrappers for Serendip components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve method and implements fmt.Stringer so the supervisor can name it in
logs.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Drains in-flight requests on cancellation with a bounded timeout
  - Treats http.ErrServerClosed as a clean exit

Catalog Refresh (CatalogService):
  - Loads the catalog when the store is still empty
  - Reloads on file change events and on a fixed interval
  - Serves admin reloads through Reload, which shares the same rate limit
  - Keeps the previous snapshot when a load fails

# Usage Example

	store := catalog.NewStore()
	catalogSvc := services.NewCatalogService(store, source, services.CatalogServiceConfig{
	    WatchPath:      cfg.Catalog.Path,
	    ReloadInterval: cfg.Catalog.ReloadInterval,
	    MinGap:         cfg.Catalog.ReloadMinGap,
	    LoadTimeout:    cfg.Catalog.LoadTimeout,
	}, logging.Logger())
	tree.AddDataService(catalogSvc)

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.Logger()))

# Error Handling

Returning an error from Serve makes suture restart the service with backoff.
Returning ctx.Err() after cancellation is a normal stop. A catalog load that
fails after startup is logged and does not end Serve.
*/
package services
