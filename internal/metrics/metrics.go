// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// ArtworkResponses counts artwork responses by source ("moma" or "sample").
	ArtworkResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwork_responses_total",
			Help: "Total number of artwork-of-the-day responses by source",
		},
		[]string{"source"},
	)

	// ArtworkFallbacks counts degraded responses by failure reason.
	ArtworkFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwork_fallbacks_total",
			Help: "Total number of responses served from the sample list",
		},
		[]string{"reason"}, // "invalid_date", "empty_list", "internal"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_reloads_total",
			Help: "Total number of cache slot reloads by resulting source",
		},
		[]string{"cache_type", "source"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// Dataset Metrics
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of candidate list loads by outcome",
		},
		[]string{"outcome"}, // "remote", "curated"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of candidate list loads including upstream fetch",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Record counts of the most recent remote load by pipeline stage",
		},
		[]string{"stage"}, // "raw", "filtered", "sampled", "total"
	)

	DatasetFetchBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_fetch_bytes",
			Help:    "Size of upstream collection payloads in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 8, 9),
		},
	)

	DatasetFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetch_errors_total",
			Help: "Total number of failed upstream fetches by error type",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordArtworkResponse counts a served artwork response. A non-empty reason
// also counts it as a fallback.
func RecordArtworkResponse(source, fallbackReason string) {
	ArtworkResponses.WithLabelValues(source).Inc()
	if fallbackReason != "" {
		ArtworkFallbacks.WithLabelValues(fallbackReason).Inc()
	}
}

// RecordDatasetLoad records the outcome of one candidate list load.
// Stage counts are only updated for remote loads.
func RecordDatasetLoad(outcome string, duration time.Duration, raw, filtered, sampled, total int) {
	DatasetLoads.WithLabelValues(outcome).Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
	DatasetRecords.WithLabelValues("total").Set(float64(total))
	if outcome != "remote" {
		return
	}
	DatasetRecords.WithLabelValues("raw").Set(float64(raw))
	DatasetRecords.WithLabelValues("filtered").Set(float64(filtered))
	DatasetRecords.WithLabelValues("sampled").Set(float64(sampled))
}

// RecordDatasetFetchError counts a failed upstream fetch.
func RecordDatasetFetchError(errorType string) {
	DatasetFetchErrors.WithLabelValues(errorType).Inc()
}
