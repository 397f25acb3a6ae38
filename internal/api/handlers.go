// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package api

import (
	"context"
	"time"

	"github.com/tomtom215/dailymoma/internal/cache"
	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/middleware"
	"github.com/tomtom215/dailymoma/internal/models"
	"github.com/tomtom215/dailymoma/internal/selector"
)

// DefaultPlaceholderURL is the image URL template; %s is the object ID.
const DefaultPlaceholderURL = "https://via.placeholder.com/400x300/0066cc/ffffff?text=MoMA+Artwork+%s"

// Version is reported by /api/health. Overridden at build time via -ldflags.
var Version = "dev"

// ArtworkService answers artwork-of-the-day requests; *artwork.Service in
// production.
type ArtworkService interface {
	Handle(ctx context.Context, rawDate *string) models.ArtworkResponse
	Selector() *selector.Selector
}

// CacheInspector exposes cache state without triggering a load.
type CacheInspector interface {
	Snapshot(now time.Time) (cache.Info, bool)
	Stats() cache.Stats
}

// UpstreamInspector exposes the dataset provider's last outcome.
type UpstreamInspector interface {
	URL() string
	CircuitState() string
	LastResult() (dataset.LoadResult, bool)
}

// WarmUpStatus reports whether the startup cache warm-up has finished.
type WarmUpStatus interface {
	Completed() bool
}

// HandlerConfig carries the handler dependencies. Cache, Upstream and WarmUp
// are optional.
type HandlerConfig struct {
	Artworks       ArtworkService
	Cache          CacheInspector
	Upstream       UpstreamInspector
	WarmUp         WarmUpStatus
	PlaceholderURL string
	PerfMon        *middleware.PerformanceMonitor
	Now            func() time.Time
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_artwork.go: artwork of the day
//   - handlers_image.go: image URL resolution
//   - handlers_health.go: health, readiness and performance endpoints
//   - handlers_helpers.go: response helpers
type Handler struct {
	artworks       ArtworkService
	cache          CacheInspector
	upstream       UpstreamInspector
	warmUp         WarmUpStatus
	placeholderURL string
	perfMon        *middleware.PerformanceMonitor
	now            func() time.Time
	startTime      time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(api.HandlerConfig{Artworks: svc, Cache: manager, Upstream: provider})
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":3000", router.SetupChi())
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.PlaceholderURL == "" {
		cfg.PlaceholderURL = DefaultPlaceholderURL
	}
	if cfg.PerfMon == nil {
		cfg.PerfMon = middleware.NewPerformanceMonitor(1000)
	}
	return &Handler{
		artworks:       cfg.Artworks,
		cache:          cfg.Cache,
		upstream:       cfg.Upstream,
		warmUp:         cfg.WarmUp,
		placeholderURL: cfg.PlaceholderURL,
		perfMon:        cfg.PerfMon,
		now:            cfg.Now,
		startTime:      cfg.Now(),
	}
}

// PerformanceMonitor returns the monitor fed by the router middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}
