// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(t *testing.T, h prometheus.Metric) uint64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	histogram, ok := APIRequestDuration.WithLabelValues("GET", "/api/artwork").(prometheus.Metric)
	if !ok {
		t.Fatal("api_request_duration_seconds observer is not a metric")
	}
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/artwork", "200"))
	samplesBefore := getHistogramCount(t, histogram)

	RecordAPIRequest("GET", "/api/artwork", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/artwork", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
	if d := getHistogramCount(t, histogram) - samplesBefore; d != 1 {
		t.Errorf("api_request_duration_seconds samples delta = %d, want 1", d)
	}
}

// TestTrackActiveRequest tests the in-flight gauge
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordArtworkResponse(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		reason       string
		wantFallback float64
	}{
		{name: "success", source: "moma", reason: "", wantFallback: 0},
		{name: "invalid date", source: "sample", reason: "invalid_date", wantFallback: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responsesBefore := testutil.ToFloat64(ArtworkResponses.WithLabelValues(tt.source))
			fallbackBefore := 0.0
			if tt.reason != "" {
				fallbackBefore = testutil.ToFloat64(ArtworkFallbacks.WithLabelValues(tt.reason))
			}

			RecordArtworkResponse(tt.source, tt.reason)

			if d := testutil.ToFloat64(ArtworkResponses.WithLabelValues(tt.source)) - responsesBefore; d != 1 {
				t.Errorf("responses delta = %v, want 1", d)
			}
			if tt.reason != "" {
				if d := testutil.ToFloat64(ArtworkFallbacks.WithLabelValues(tt.reason)) - fallbackBefore; d != tt.wantFallback {
					t.Errorf("fallback delta = %v, want %v", d, tt.wantFallback)
				}
			}
		})
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	samplesBefore := getHistogramCount(t, DatasetLoadDuration)
	RecordDatasetLoad("remote", time.Second, 150000, 90000, 1000, 1021)
	if d := getHistogramCount(t, DatasetLoadDuration) - samplesBefore; d != 1 {
		t.Errorf("dataset_load_duration_seconds samples delta = %d, want 1", d)
	}
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("sampled")); got != 1000 {
		t.Errorf("sampled = %v, want 1000", got)
	}

	// Curated loads leave the remote stage counts alone.
	RecordDatasetLoad("curated", time.Millisecond, 0, 0, 0, 21)
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("raw")); got != 150000 {
		t.Errorf("raw = %v, want 150000", got)
	}
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("total")); got != 21 {
		t.Errorf("total = %v, want 21", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "test-breaker"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()

	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordDatasetFetchError("timeout")

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/artwork", "200", 25*time.Millisecond)
	}
}
