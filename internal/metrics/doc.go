// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package metrics provides Prometheus metrics for Daily MoMA.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, endpoint, status_code (counter)
  - api_request_duration_seconds: latency by method, endpoint (histogram)
  - api_active_requests: in-flight requests (gauge)

Artwork Metrics:
  - artwork_responses_total: responses by source, "moma" or "sample" (counter)
  - artwork_fallbacks_total: degraded responses by reason (counter)

Cache Metrics:
  - cache_hits_total / cache_misses_total: slot lookups by cache_type (counter)
  - cache_reloads_total: reloads by cache_type and resulting source (counter)
  - cache_entries: records held by the slot (gauge)

Dataset Metrics:
  - dataset_loads_total: loads by outcome, "remote" or "curated" (counter)
  - dataset_load_duration_seconds: load latency (histogram)
  - dataset_records: last remote load counts by stage (gauge)
  - dataset_fetch_bytes: upstream payload size (histogram)
  - dataset_fetch_errors_total: failed fetches by error_type (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: by name and result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

# Example Queries

Fallback ratio over 5 minutes:

	sum(rate(artwork_responses_total{source="sample"}[5m]))
	  / sum(rate(artwork_responses_total[5m]))

Upstream health:

	circuit_breaker_state{name="moma-dataset"} > 0
*/
package metrics
