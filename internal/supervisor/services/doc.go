// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package services provides suture.Service wrappers for Daily MoMA components.

HTTPServerService:
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into a context-aware Serve

WarmUpService:
  - Loads the artwork list once at startup so the first request is fast
  - Reports completion for the readiness probe
  - Returns suture.ErrDoNotRestart when done, including after a load that
    fell back to the curated list
*/
package services
