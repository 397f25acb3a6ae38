// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/dailymoma/internal/logging"
)

// AccessLog logs one line per completed request through the request-scoped
// logger, so request_id and correlation_id are attached when RequestID runs
// first. 5xx responses log at warn, everything else at debug.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next(rec, r)

		level := zerolog.DebugLevel
		if rec.statusCode >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		logging.Ctx(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rec.statusCode).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	}
}
