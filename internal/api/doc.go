// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package api provides the HTTP layer: routing, middleware wiring and handlers.

Routes:

	GET /api/artwork?date=YYYY-MM-DD   artworks of the day (always 200)
	GET /api/image?objectId=<id>       placeholder image URL (400 without an ID)
	GET /api/health                    cache, upstream and selection state
	GET /api/health/live               liveness probe
	GET /api/health/ready              readiness probe (503 during warm-up)
	GET /api/health/performance        per-endpoint latency percentiles
	GET /metrics                       Prometheus metrics
	GET /swagger/*                     OpenAPI UI

The artwork and image endpoints return bare JSON bodies consumed by the web
client. Operational endpoints use the models.APIResponse envelope.

Middleware stack (outermost first): request ID, real IP, access log, panic
recovery, CORS, Prometheus metrics, performance monitor, gzip. Rate limits
are applied per route group using go-chi/httprate keyed by client IP.

Usage:

	h := api.NewHandler(api.HandlerConfig{
	    Artworks: artwork.NewService(manager, sel, time.Now),
	    Cache:    manager,
	    Upstream: provider,
	})
	srv := &http.Server{Handler: api.NewRouter(h, nil).SetupChi()}
*/
package api
