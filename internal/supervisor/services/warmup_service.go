// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/dailymoma/internal/cache"
	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/models"
)

// ListLoader is satisfied by *cache.Manager.
type ListLoader interface {
	GetArtworkList(ctx context.Context, now time.Time) ([]models.Artwork, cache.Info)
}

// WarmUpService populates the artwork cache once at startup.
//
// GetArtworkList never fails (it falls back to the curated list), so a
// single run always completes the warm-up. Serve then returns
// suture.ErrDoNotRestart and the supervisor drops the service.
type WarmUpService struct {
	loader    ListLoader
	now       func() time.Time
	completed atomic.Bool
	name      string
}

// NewWarmUpService creates the one-shot warm-up. nil now means time.Now.
func NewWarmUpService(loader ListLoader, now func() time.Time) *WarmUpService {
	if now == nil {
		now = time.Now
	}
	return &WarmUpService{
		loader: loader,
		now:    now,
		name:   "cache-warmup",
	}
}

// Serve implements suture.Service.
//
// The load itself is detached from ctx inside the cache, so on shutdown
// Serve returns without waiting for it.
func (w *WarmUpService) Serve(ctx context.Context) error {
	if w.completed.Load() {
		return suture.ErrDoNotRestart
	}

	start := time.Now()
	done := make(chan cache.Info, 1)
	go func() {
		_, info := w.loader.GetArtworkList(ctx, w.now())
		done <- info
	}()

	select {
	case info := <-done:
		w.completed.Store(true)
		logging.Info().
			Str("source", string(info.Source)).
			Int("size", info.Size).
			Dur("duration", time.Since(start)).
			Msg("Artwork cache warmed")
		return suture.ErrDoNotRestart

	case <-ctx.Done():
		logging.Warn().Msg("Cache warm-up interrupted by shutdown")
		return ctx.Err()
	}
}

// Completed reports whether the warm-up load has finished.
func (w *WarmUpService) Completed() bool {
	return w.completed.Load()
}

// String implements fmt.Stringer; suture uses it in log events.
func (w *WarmUpService) String() string {
	return w.name
}
