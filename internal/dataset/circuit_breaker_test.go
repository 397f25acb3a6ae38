// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// fakeFetcher returns a canned body or error and counts calls.
type fakeFetcher struct {
	body  []byte
	err   error
	calls atomic.Int32
}

func (f *fakeFetcher) Fetch(_ context.Context) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func TestCircuitBreakerFetcher_OpensAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeFetcher{err: ErrUpstreamStatus}
	cfg := DefaultConfig()
	cfg.BreakerFailures = 3
	cfg.BreakerTimeout = time.Hour

	cb := NewCircuitBreakerFetcher(fake, cfg)
	if cb.State() != "closed" {
		t.Fatalf("initial state = %q, want closed", cb.State())
	}

	for i := 0; i < 3; i++ {
		if _, err := cb.Fetch(context.Background()); !errors.Is(err, ErrUpstreamStatus) {
			t.Fatalf("attempt %d: error = %v", i, err)
		}
	}
	if cb.State() != "open" {
		t.Fatalf("state = %q, want open", cb.State())
	}

	_, err := cb.Fetch(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if got := fake.calls.Load(); got != 3 {
		t.Errorf("upstream called %d times, want 3", got)
	}
	if errorType(err) != "circuit_open" {
		t.Errorf("errorType = %q, want circuit_open", errorType(err))
	}
}

func TestCircuitBreakerFetcher_SuccessResetsFailures(t *testing.T) {
	fake := &fakeFetcher{err: ErrUpstreamStatus}
	cfg := DefaultConfig()
	cfg.BreakerFailures = 2

	cb := NewCircuitBreakerFetcher(fake, cfg)
	_, _ = cb.Fetch(context.Background())

	fake.err = nil
	fake.body = []byte(`[]`)
	if _, err := cb.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fake.err = ErrUpstreamStatus
	_, _ = cb.Fetch(context.Background())
	if cb.State() != "closed" {
		t.Errorf("state = %q, want closed after non-consecutive failures", cb.State())
	}
}
