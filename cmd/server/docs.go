// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

// Package main provides the Daily MoMA HTTP server
//
// @title Daily MoMA API
// @version 1.0
// @description Two artworks from the Museum of Modern Art collection, chosen deterministically for each calendar day.
// @description
// @description ## Degraded responses
// @description
// @description `GET /api/artwork` always answers 200. When the date cannot be parsed or the
// @description artwork list is unusable, the body carries `"source": "sample"` and an `error` message.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/dailymoma/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
// @schemes http https
//
// @tag.name Artwork
// @tag.description Artwork of the day and image resolution
//
// @tag.name Health
// @tag.description Health, readiness and performance probes
package main
