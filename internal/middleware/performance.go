// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/dailymoma/internal/logging"
)

// DefaultSlowRequestMS is the latency above which a request is logged.
const DefaultSlowRequestMS = 1000

// RequestMetrics tracks performance metrics for API requests
type RequestMetrics struct {
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// PerformanceMonitor keeps a sliding window of recent request latencies
// plus lifetime per-endpoint totals.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	metrics       []RequestMetrics
	maxMetrics    int
	slowMS        int64
	requestCounts map[string]int64
	totalDuration map[string]int64
}

// EndpointStats contains aggregated statistics for an endpoint
type EndpointStats struct {
	Path          string  `json:"path"`
	RequestCount  int64   `json:"request_count"`
	TotalRequests int64   `json:"total_requests"`
	AvgDuration   float64 `json:"avg_duration_ms"`
	P50Duration   int64   `json:"p50_duration_ms"`
	P95Duration   int64   `json:"p95_duration_ms"`
	P99Duration   int64   `json:"p99_duration_ms"`
	MinDuration   int64   `json:"min_duration_ms"`
	MaxDuration   int64   `json:"max_duration_ms"`
	ErrorCount    int64   `json:"error_count"`
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor(maxMetrics int) *PerformanceMonitor {
	if maxMetrics <= 0 {
		maxMetrics = 1000
	}
	return &PerformanceMonitor{
		metrics:       make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:    maxMetrics,
		slowMS:        DefaultSlowRequestMS,
		requestCounts: make(map[string]int64),
		totalDuration: make(map[string]int64),
	}
}

// SetSlowThreshold changes the slow-request logging threshold.
func (pm *PerformanceMonitor) SetSlowThreshold(d time.Duration) {
	pm.mu.Lock()
	pm.slowMS = d.Milliseconds()
	pm.mu.Unlock()
}

// RecordRequest adds a request metric
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics = append(pm.metrics, *metric)
	if len(pm.metrics) > pm.maxMetrics {
		pm.metrics = pm.metrics[1:]
	}

	key := metric.Method + " " + metric.Path
	pm.requestCounts[key]++
	pm.totalDuration[key] += metric.DurationMS
}

// GetStats returns per-endpoint statistics over the current window, sorted
// by request count descending.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	endpointMetrics := make(map[string][]int64)
	errorCounts := make(map[string]int64)
	for _, m := range pm.metrics {
		key := m.Method + " " + m.Path
		endpointMetrics[key] = append(endpointMetrics[key], m.DurationMS)
		if m.StatusCode >= http.StatusInternalServerError {
			errorCounts[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(endpointMetrics))
	for endpoint, durations := range endpointMetrics {
		if len(durations) == 0 {
			continue
		}

		sorted := make([]int64, len(durations))
		copy(sorted, durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, d := range sorted {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Path:          endpoint,
			RequestCount:  int64(len(sorted)),
			TotalRequests: pm.requestCounts[endpoint],
			AvgDuration:   float64(sum) / float64(len(sorted)),
			P50Duration:   percentile(sorted, 0.50),
			P95Duration:   percentile(sorted, 0.95),
			P99Duration:   percentile(sorted, 0.99),
			MinDuration:   sorted[0],
			MaxDuration:   sorted[len(sorted)-1],
			ErrorCount:    errorCounts[endpoint],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Path < stats[j].Path
	})

	return stats
}

// GetRecentMetrics returns the most recent N metrics
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(pm.metrics) {
		n = len(pm.metrics)
	}

	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware records latency and status for every request.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		duration := time.Since(start).Milliseconds()
		path := routeLabel(r)

		pm.RecordRequest(&RequestMetrics{
			Path:       path,
			Method:     r.Method,
			DurationMS: duration,
			StatusCode: rec.statusCode,
			Timestamp:  time.Now(),
		})

		pm.mu.RLock()
		slow := pm.slowMS
		pm.mu.RUnlock()

		if slow > 0 && duration > slow {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("path", path).
				Int64("duration_ms", duration).
				Int64("threshold_ms", slow).
				Msg("Slow request detected")
		}
	})
}

// percentile calculates the percentile value from a sorted slice
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}
