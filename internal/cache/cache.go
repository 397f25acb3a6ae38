// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/metrics"
	"github.com/tomtom215/dailymoma/internal/models"
)

// cacheType labels this cache in the shared cache metrics.
const cacheType = "artworks"

// Loader produces a fresh candidate list. It must not fail;
// *dataset.Provider is the production implementation.
type Loader interface {
	LoadCandidateList(ctx context.Context) ([]models.Artwork, dataset.LoadResult)
}

// Entry is the single cached slot. It is replaced whole, never mutated.
type Entry struct {
	List      []models.Artwork
	FetchedAt time.Time
	Source    dataset.Outcome
	TTL       time.Duration
}

// Info describes the slot as seen by one GetArtworkList call.
type Info struct {
	// Cached is true only when the call was answered from a fresh entry
	// without loading.
	Cached    bool
	Age       time.Duration
	FetchedAt time.Time
	Source    dataset.Outcome
	Size      int
	ExpiresIn time.Duration
}

// Stats tracks cache activity since start.
type Stats struct {
	Hits    int64
	Misses  int64
	Reloads int64
}

// Config holds the freshness windows.
type Config struct {
	// TTL applies to lists that include remote records.
	TTL time.Duration
	// FallbackTTL applies to curated-only lists. Zero means TTL.
	FallbackTTL time.Duration
}

// DefaultTTL is the freshness window of a loaded list.
const DefaultTTL = 7 * 24 * time.Hour

// Manager keeps one artwork list in memory and reloads it through a Loader
// once it is older than its TTL.
//
// There is no background refresh: the first caller after expiry triggers
// the reload. Concurrent callers that find the slot stale share a single
// Loader call, which runs detached from their cancellation.
//
// Thread Safety:
//   - The slot is guarded by a sync.RWMutex
//   - Returned lists are shared and must be treated as read-only
//
// Example:
//
//	m := cache.NewManager(provider, cache.Config{TTL: cache.DefaultTTL})
//	list, info := m.GetArtworkList(ctx, time.Now())
//	if !info.Cached {
//	    log.Printf("reloaded %d artworks from %s", info.Size, info.Source)
//	}
type Manager struct {
	loader      Loader
	ttl         time.Duration
	fallbackTTL time.Duration

	mu    sync.RWMutex
	entry *Entry

	group singleflight.Group

	hits    atomic.Int64
	misses  atomic.Int64
	reloads atomic.Int64
}

// NewManager creates an empty Manager around loader.
func NewManager(loader Loader, cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	fallbackTTL := cfg.FallbackTTL
	if fallbackTTL <= 0 {
		fallbackTTL = ttl
	}
	return &Manager{
		loader:      loader,
		ttl:         ttl,
		fallbackTTL: fallbackTTL,
	}
}

// GetArtworkList returns the cached list if it is younger than its TTL at
// now, and otherwise loads, stores and returns a new one with FetchedAt set
// to now.
func (m *Manager) GetArtworkList(ctx context.Context, now time.Time) ([]models.Artwork, Info) {
	if e := m.fresh(now); e != nil {
		m.hits.Add(1)
		metrics.CacheHits.WithLabelValues(cacheType).Inc()
		return e.List, describe(e, now, true)
	}

	m.misses.Add(1)
	metrics.CacheMisses.WithLabelValues(cacheType).Inc()

	detached := context.WithoutCancel(ctx)
	v, _, _ := m.group.Do(cacheType, func() (interface{}, error) {
		// A flight that finished just before this one may already have
		// refilled the slot.
		if e := m.fresh(now); e != nil {
			return e, nil
		}
		return m.reload(detached, now), nil
	})

	e := v.(*Entry)
	return e.List, describe(e, now, false)
}

func (m *Manager) reload(ctx context.Context, now time.Time) *Entry {
	list, result := m.loader.LoadCandidateList(ctx)

	ttl := m.ttl
	if result.Outcome != dataset.OutcomeRemote {
		ttl = m.fallbackTTL
	}
	e := &Entry{
		List:      list,
		FetchedAt: now,
		Source:    result.Outcome,
		TTL:       ttl,
	}

	m.mu.Lock()
	m.entry = e
	m.mu.Unlock()

	m.reloads.Add(1)
	metrics.CacheReloads.WithLabelValues(cacheType, string(result.Outcome)).Inc()
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(len(list)))

	logging.Ctx(ctx).Info().
		Str("source", string(e.Source)).
		Int("size", len(list)).
		Dur("ttl", ttl).
		Msg("Artwork cache reloaded")

	return e
}

func (m *Manager) fresh(now time.Time) *Entry {
	m.mu.RLock()
	e := m.entry
	m.mu.RUnlock()

	if e == nil || now.Sub(e.FetchedAt) >= e.TTL {
		return nil
	}
	return e
}

// Invalidate drops the slot; the next call reloads.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.entry = nil
	m.mu.Unlock()
	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
}

// Snapshot describes the current slot without loading. ok is false while
// the slot is empty.
func (m *Manager) Snapshot(now time.Time) (info Info, ok bool) {
	m.mu.RLock()
	e := m.entry
	m.mu.RUnlock()

	if e == nil {
		return Info{}, false
	}
	return describe(e, now, now.Sub(e.FetchedAt) < e.TTL), true
}

// Stats returns hit, miss and reload counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Reloads: m.reloads.Load(),
	}
}

// TTL returns the freshness window for remote lists.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func describe(e *Entry, now time.Time, cached bool) Info {
	age := now.Sub(e.FetchedAt)
	if age < 0 {
		age = 0
	}
	expiresIn := e.TTL - age
	if expiresIn < 0 {
		expiresIn = 0
	}
	return Info{
		Cached:    cached,
		Age:       age,
		FetchedAt: e.FetchedAt,
		Source:    e.Source,
		Size:      len(e.List),
		ExpiresIn: expiresIn,
	}
}
