// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package config provides configuration loading and validation for Daily MoMA.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/dailymoma/config.yaml or /etc/dailymoma/config.yml
 3. Environment variables, which override everything else

# Environment Variables

Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Dataset (DatasetConfig):
  - DATASET_URL: MoMA Artworks.json location
  - DATASET_USER_AGENT: User-Agent for the download (default: Daily-MoMA-App/1.0)
  - DATASET_TIMEOUT: Download timeout (default: 60s)
  - DATASET_MAX_BYTES: Response size cap (default: 512MB)
  - DATASET_SAMPLE_SIZE: Remote records kept per load (default: 1000)
  - DATASET_MIN_FETCH_INTERVAL: Minimum spacing between downloads (default: 1m)
  - DATASET_BREAKER_FAILURES: Consecutive failures that open the breaker (default: 3)
  - DATASET_BREAKER_TIMEOUT: Open-state duration (default: 5m)

Cache (CacheConfig):
  - CACHE_TTL: List freshness window (default: 168h)
  - CACHE_FALLBACK_TTL: Window for curated-only lists (default: same as CACHE_TTL)
  - CACHE_WARM_ON_STARTUP: Load the list at startup (default: false)

Selection and image:
  - SELECTION_TIMEZONE: IANA zone for "today" (default: UTC)
  - IMAGE_PLACEHOLDER_URL: Template with one %s for the object ID

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error, fatal, panic, disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	loc, _ := cfg.Selection.Location()
*/
package config
