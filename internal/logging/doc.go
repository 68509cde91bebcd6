// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package logging provides centralized zerolog-based logging for Serendip.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Msg("Server starting")
	logging.Error().Err(err).Msg("Catalog reload failed")

	// Request-scoped: adds request_id from the context
	logging.Ctx(ctx).Info().Str("preferred", "sport").Msg("Recommendation served")

# Configuration

Environment Variables (read by the config package):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false - include caller info (default: false)

# Components

Long-lived components take a zerolog.Logger in their constructor and tag it:

	logger = logger.With().Str("component", "recommend").Logger()

Tests pass zerolog.Nop() or NewTestLogger(&buf).

# slog bridge

Libraries that only speak log/slog (the suture supervisor via sutureslog) are
given NewSlogLogger(), which forwards every record into the global zerolog
logger.

# Untrusted values

Request input that ends up in a log line goes through SanitizeValue first so
a crafted topic string cannot forge log records.
*/
package logging
