// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package middleware provides HTTP middleware shared by all routes.

Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the logging context
  - AccessLog: one structured log line per completed request
  - PrometheusMetrics: request count, latency and in-flight gauge
  - PerformanceMonitor: sliding-window latency percentiles served by
    /api/health/performance

The plain middlewares take and return http.HandlerFunc; the router adapts
them to chi's func(http.Handler) http.Handler form:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(perfMon.Middleware)

Metric and performance labels use the chi route pattern ("/api/artwork"),
so query strings and unknown paths do not create new series. Requests that
match no route are labelled "unmatched".

All components are safe for concurrent use.
*/
package middleware
