// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Command server runs the Daily MoMA HTTP API.

# Application Architecture

The server initializes components in the following order:

 1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
 2. Logging: zerolog, JSON or console
 3. Dataset provider: MoMA collection client behind a circuit breaker and
    a fetch throttle, falling back to the curated list
 4. Cache manager: one in-memory list with a TTL, reloaded on demand
 5. Selector and artwork service: deterministic pair per calendar day
 6. HTTP server: Chi router with CORS, rate limiting, Prometheus metrics
    and Swagger UI
 7. Supervisor tree (suture v4): HTTP server plus optional cache warm-up

# Endpoints

	GET /api/artwork?date=YYYY-MM-DD
	GET /api/image?objectId=ID
	GET /api/health
	GET /api/health/live
	GET /api/health/ready
	GET /api/health/performance
	GET /metrics
	GET /swagger/index.html

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests for SHUTDOWN_TIMEOUT.

# Example Usage

	export HTTP_PORT=3000
	export SELECTION_TIMEZONE=America/New_York
	export CACHE_WARM_ON_STARTUP=true
	./dailymoma

Docker:

	docker run -d -p 3000:3000 -e LOG_FORMAT=json ghcr.io/tomtom215/dailymoma
*/
package main
