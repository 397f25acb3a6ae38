// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

// Package logging provides the zerolog-based global logger for Daily MoMA.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Server starting")
//	logging.Err(err).Msg("Operation failed")
//
//	// Request-scoped fields (request_id, correlation_id)
//	logging.Ctx(ctx).Info().Str("date", d).Msg("Artwork selected")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog. The
// supervisor tree hands it to sutureslog so service restarts and failures
// land in the same stream.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// chain is never written.
package logging
