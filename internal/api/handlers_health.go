// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/middleware"
	"github.com/tomtom215/dailymoma/internal/models"
	"github.com/tomtom215/dailymoma/internal/selector"
	"github.com/tomtom215/dailymoma/internal/validation"
)

const (
	warmUpDisabled = "disabled"
	warmUpPending  = "pending"
	warmUpComplete = "complete"

	maxRecentMetrics = 100
)

// Health handles health check requests
//
// Status is "degraded" when the last dataset load fell back to the curated
// list or the upstream circuit is open; the artwork endpoint keeps serving
// either way.
//
// @Summary Get service health
// @Description Returns cache state, upstream circuit breaker state, selection window and uptime
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	health := models.HealthStatus{
		Status:    "healthy",
		Version:   Version,
		Uptime:    now.Sub(h.startTime).Seconds(),
		Cache:     h.cacheHealth(now),
		Upstream:  h.upstreamHealth(),
		Timestamp: now,
		Selection: h.selectionHealth(),
	}
	if health.Upstream.LastOutcome == string(dataset.OutcomeCurated) || health.Upstream.CircuitState == "open" {
		health.Status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: now,
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK while the process is running.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": now.Sub(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: now,
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// The service can always answer from the curated list, so it is ready
// unless a startup warm-up was requested and has not finished yet.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 with cache diagnostics; 503 only while the startup cache warm-up is running.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReadinessStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.ReadinessStatus} "Warm-up in progress"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	readiness := models.ReadinessStatus{
		Ready:  true,
		WarmUp: warmUpDisabled,
	}
	if h.warmUp != nil {
		readiness.WarmUp = warmUpComplete
		if !h.warmUp.Completed() {
			readiness.WarmUp = warmUpPending
			readiness.Ready = false
		}
	}
	if h.cache != nil {
		if info, ok := h.cache.Snapshot(now); ok {
			readiness.CacheLoaded = true
			readiness.CacheSource = string(info.Source)
			readiness.CacheSize = info.Size
		}
	}

	if !readiness.Ready {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeNotReady, "Cache warm-up in progress", readiness, nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "ready",
		Data:   readiness,
		Metadata: models.Metadata{
			Timestamp: now,
		},
	})
}

// HealthPerformance returns per-endpoint latency statistics.
//
// @Summary Get request latency statistics
// @Description Returns P50/P95/P99 latencies per endpoint over the recent request window, optionally with the most recent requests.
// @Tags Health
// @Produce json
// @Param recent query int false "Number of recent requests to include (values above 100 are capped)"
// @Success 200 {object} models.APIResponse "Performance statistics"
// @Failure 400 {object} models.APIResponse "Invalid recent parameter"
// @Router /health/performance [get]
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	recent, err := parseRecent(r.URL.Query().Get("recent"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil, err)
		return
	}

	data := map[string]interface{}{
		"endpoints": h.GetPerformanceStats(),
	}
	if recent > 0 {
		data["recent"] = h.perfMon.GetRecentMetrics(recent)
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: h.now(),
		},
	})
}

// PerformanceQuery is the validated form of the performance parameters.
type PerformanceQuery struct {
	Recent int `validate:"min=0,max=100"`
}

// parseRecent reads the "recent" parameter. Values above the window size are
// capped rather than rejected.
func parseRecent(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("recent must be an integer")
	}
	q := PerformanceQuery{Recent: n}
	if verr := validation.ValidateStruct(&q); verr != nil {
		if verr.HasTag("max") {
			return maxRecentMetrics, nil
		}
		return 0, verr
	}
	return q.Recent, nil
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}

func (h *Handler) cacheHealth(now time.Time) models.CacheHealth {
	var ch models.CacheHealth
	if h.cache == nil {
		return ch
	}

	stats := h.cache.Stats()
	ch.Hits, ch.Misses, ch.Reloads = stats.Hits, stats.Misses, stats.Reloads

	if info, ok := h.cache.Snapshot(now); ok {
		fetchedAt := info.FetchedAt
		ch.Populated = true
		ch.Source = string(info.Source)
		ch.Size = info.Size
		ch.FetchedAt = &fetchedAt
		ch.AgeSeconds = info.Age.Seconds()
		ch.ExpiresIn = info.ExpiresIn.Seconds()
	}
	return ch
}

func (h *Handler) upstreamHealth() models.UpstreamHealth {
	var uh models.UpstreamHealth
	if h.upstream == nil {
		return uh
	}

	uh.URL = maskURL(h.upstream.URL())
	uh.CircuitState = h.upstream.CircuitState()
	if last, ok := h.upstream.LastResult(); ok {
		uh.LastOutcome = string(last.Outcome)
		uh.LastRawCount = last.RawCount
		uh.LastKeptCount = last.SampledCount
		if last.Err != nil {
			uh.LastError = last.Err.Error()
		}
	}
	return uh
}

func (h *Handler) selectionHealth() models.SelectionHealth {
	sel := h.artworks.Selector()
	return models.SelectionHealth{
		MinDate:  sel.MinDate().Format(selector.DateLayout),
		Today:    sel.Today().Format(selector.DateLayout),
		Timezone: sel.Location().String(),
	}
}

// maskURL strips credentials and the query string from a URL for display.
func maskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
