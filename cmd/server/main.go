// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/serendip/docs" // Import generated swagger docs
	"github.com/tomtom215/serendip/internal/api"
	"github.com/tomtom215/serendip/internal/config"
	"github.com/tomtom215/serendip/internal/logging"
	"github.com/tomtom215/serendip/internal/recommend"
	"github.com/tomtom215/serendip/internal/supervisor"
	"github.com/tomtom215/serendip/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_path", cfg.Catalog.Path).
		Str("catalog_format", cfg.Catalog.Format).
		Str("profile", cfg.Recommend.Profile).
		Msg("Starting Serendip")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*) in production; set explicit origins")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === CATALOG ===
	catalogComponents, err := initCatalog(ctx, &cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load article catalog")
	}
	defer catalogComponents.Close()

	// === RECOMMENDATION ENGINE ===
	engineCfg, err := cfg.Recommend.EngineConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid recommendation configuration")
	}
	engine, err := recommend.NewEngine(catalogComponents.Store, engineCfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	logging.Info().
		Str("profile", engineCfg.Profile).
		Str("layout", string(engineCfg.Layout)).
		Int("serendipitous_count", engineCfg.SerendipitousCount).
		Int("preferred_count", engineCfg.PreferredCount).
		Msg("Recommendation engine ready")

	// === HTTP ===
	handler := api.NewHandler(engine, catalogComponents.Store, catalogComponents.Service)
	chiMiddleware := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(catalogComponents.Service)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one result and never closes the channel.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport() //nolint:errcheck // best-effort report on exit
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
