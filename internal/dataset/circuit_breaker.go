// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/metrics"
)

// BreakerName labels the upstream circuit breaker in logs and metrics.
const BreakerName = "moma-dataset"

// Ensure CircuitBreakerFetcher implements Fetcher
var _ Fetcher = (*CircuitBreakerFetcher)(nil)

// CircuitBreakerFetcher wraps a Fetcher with a circuit breaker.
//
// Collection loads are rare (at most once per cache window), so the breaker
// trips on consecutive failures rather than a failure ratio.
type CircuitBreakerFetcher struct {
	next Fetcher
	cb   *gobreaker.CircuitBreaker[[]byte]
	name string
}

// NewCircuitBreakerFetcher wraps next using the breaker settings from cfg.
func NewCircuitBreakerFetcher(next Fetcher, cfg Config) *CircuitBreakerFetcher {
	name := BreakerName
	threshold := cfg.BreakerFailures
	if threshold == 0 {
		threshold = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening dataset circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Dataset state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerFetcher{next: next, cb: cb, name: name}
}

// Fetch runs the wrapped fetch through the breaker. While open it fails fast
// with gobreaker.ErrOpenState.
func (f *CircuitBreakerFetcher) Fetch(ctx context.Context) ([]byte, error) {
	body, err := f.cb.Execute(func() ([]byte, error) {
		return f.next.Fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(f.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Dataset fetch rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(f.name, "failure").Inc()
			counts := f.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(f.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(f.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(f.name).Set(0)
	return body, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (f *CircuitBreakerFetcher) State() string {
	return stateToString(f.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
