// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package models

import (
	"time"
)

// Response sources reported in ArtworkResponse.Source.
const (
	SourceMoMA   = "moma"
	SourceSample = "sample"
)

// ArtworkResponse is the body of GET /api/artwork.
//
// The endpoint always answers 200. A successful selection carries Date and
// CacheInfo; a degraded answer (Source "sample") carries Error instead and
// omits both.
//
// Example success:
//
//	{
//	  "artwork1": {"Title": "Marilyn Monroe", ...},
//	  "artwork2": {"Title": "Number 1, 1950 (Lavender Mist)", ...},
//	  "totalArtworks": 1021,
//	  "source": "moma",
//	  "date": "2024-09-01",
//	  "cacheInfo": {"cached": true, "cacheAge": 42}
//	}
//
// Example degraded:
//
//	{
//	  "artwork1": {...},
//	  "artwork2": {...},
//	  "totalArtworks": 5,
//	  "source": "sample",
//	  "error": "Invalid date format. Use YYYY-MM-DD"
//	}
type ArtworkResponse struct {
	Artwork1      Artwork    `json:"artwork1"`
	Artwork2      Artwork    `json:"artwork2"`
	TotalArtworks int        `json:"totalArtworks"`
	Source        string     `json:"source"`
	Date          string     `json:"date,omitempty"`
	CacheInfo     *CacheInfo `json:"cacheInfo,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// CacheInfo describes the cache slot that served an artwork response.
// CacheAge is in whole minutes, rounded.
type CacheInfo struct {
	Cached   bool `json:"cached"`
	CacheAge int  `json:"cacheAge"`
}

// ImageResponse is the body of GET /api/image.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
	Source   string `json:"source"`
	ObjectID string `json:"objectId"`
	Note     string `json:"note"`
}

// ErrorResponse is the flat error body used by the public artwork and image
// endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIResponse wraps the operational endpoints (health, performance).
//
// Status is "success" or "error". Data holds the payload on success and
// Error the details on failure.
//
// Example:
//
//	{
//	  "status": "success",
//	  "data": {"status": "healthy", "uptime": 3600.5, ...},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// Error codes sent in APIError.Code by the operational endpoints.
const (
	// ErrCodeValidation marks rejected query parameters.
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeNotReady marks a readiness check made while the startup
	// warm-up is still running.
	ErrCodeNotReady = "NOT_READY"
	// ErrCodeInternal marks a response that could not be encoded.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// APIError is a machine-readable error payload.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of GET /api/health.
type HealthStatus struct {
	Status    string          `json:"status"`
	Version   string          `json:"version"`
	Uptime    float64         `json:"uptime"`
	Cache     CacheHealth     `json:"cache"`
	Upstream  UpstreamHealth  `json:"upstream"`
	Timestamp time.Time       `json:"timestamp"`
	Selection SelectionHealth `json:"selection"`
}

// CacheHealth summarizes the artwork list cache slot.
type CacheHealth struct {
	Populated  bool       `json:"populated"`
	Source     string     `json:"source,omitempty"`
	Size       int        `json:"size"`
	FetchedAt  *time.Time `json:"fetched_at,omitempty"`
	AgeSeconds float64    `json:"age_seconds"`
	ExpiresIn  float64    `json:"expires_in_seconds"`
	Hits       int64      `json:"hits"`
	Misses     int64      `json:"misses"`
	Reloads    int64      `json:"reloads"`
}

// UpstreamHealth describes the remote dataset client.
type UpstreamHealth struct {
	URL           string `json:"url"`
	CircuitState  string `json:"circuit_state"`
	LastOutcome   string `json:"last_outcome,omitempty"`
	LastError     string `json:"last_error,omitempty"`
	LastRawCount  int    `json:"last_raw_count"`
	LastKeptCount int    `json:"last_kept_count"`
}

// SelectionHealth reports the selectable date window.
type SelectionHealth struct {
	MinDate  string `json:"min_date"`
	Today    string `json:"today"`
	Timezone string `json:"timezone"`
}

// ReadinessStatus is the payload of GET /api/health/ready.
type ReadinessStatus struct {
	Ready       bool   `json:"ready"`
	WarmUp      string `json:"warm_up"`
	CacheLoaded bool   `json:"cache_loaded"`
	CacheSource string `json:"cache_source,omitempty"`
	CacheSize   int    `json:"cache_size"`
}
