// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/dailymoma/internal/metrics"
)

func TestPrometheusMetrics_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		write  bool
	}{
		{"explicit 200", http.StatusOK, true},
		{"bad request", http.StatusBadRequest, true},
		{"unavailable", http.StatusServiceUnavailable, true},
		{"implicit 200", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
				if tt.write {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("ok"))
			})

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/api/artwork", nil))

			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return PrometheusMetrics(next.ServeHTTP) })
	r.Get("/api/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/widgets/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/api/widgets/1", "/api/widgets/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("Expected 2 requests under the route pattern, got %v", got)
	}
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newStatusRecorder(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusCreated {
		t.Errorf("Expected status code 201, got %d", rw.statusCode)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}
