// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package config provides layered configuration for Serendip.

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig, loaded through the structs provider)
 2. Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/serendip/config.yaml, /etc/serendip/config.yml
 3. Environment variables, mapped explicitly by envTransformFunc

A .env file in the working directory is read into the process environment
before the environment layer is applied. Variables already set win over the
file.

# Sections

  - Server: HTTP listener (HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT)
  - Security: rate limiting and CORS (RATE_LIMIT_*, DISABLE_RATE_LIMIT, CORS_ORIGINS)
  - Logging: zerolog setup (LOG_LEVEL, LOG_FORMAT, LOG_CALLER)
  - Catalog: article source and reload policy (CATALOG_*)
  - Recommend: output profile and overrides (RECOMMEND_*)

# Profiles

RECOMMEND_PROFILE selects a recommendation profile. Any RECOMMEND_* value set
in the file or environment overrides the profile; unset values keep it:

	RECOMMEND_PROFILE=grouped RECOMMEND_INCLUDE_TOPIC=true ./serendip

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	engineCfg, err := cfg.Recommend.EngineConfig()
*/
package config
