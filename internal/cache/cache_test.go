// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package cache

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/models"
)

// fakeLoader returns lists of a fixed size and counts calls. When gate is
// non-nil each call blocks until it is closed.
type fakeLoader struct {
	size    int
	outcome dataset.Outcome
	gate    chan struct{}
	calls   atomic.Int32
	sawDone atomic.Bool
}

func (f *fakeLoader) LoadCandidateList(ctx context.Context) ([]models.Artwork, dataset.LoadResult) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if ctx.Err() != nil {
		f.sawDone.Store(true)
	}
	list := make([]models.Artwork, f.size)
	for i := range list {
		list[i] = models.Artwork{Title: "Artwork", ObjectID: models.ObjectID(strconv.Itoa(i))}
	}
	outcome := f.outcome
	if outcome == "" {
		outcome = dataset.OutcomeRemote
	}
	return list, dataset.LoadResult{Outcome: outcome, Total: f.size}
}

var epoch = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestManager_FirstLoadThenHit(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 31}
	m := NewManager(loader, Config{TTL: DefaultTTL})

	list, info := m.GetArtworkList(context.Background(), epoch)
	if len(list) != 31 {
		t.Fatalf("len = %d, want 31", len(list))
	}
	if info.Cached {
		t.Error("first load reported Cached")
	}
	if info.Age != 0 || !info.FetchedAt.Equal(epoch) {
		t.Errorf("info = %+v", info)
	}

	_, info = m.GetArtworkList(context.Background(), epoch.Add(time.Second))
	if !info.Cached {
		t.Error("second call should be served from cache")
	}
	if info.Age != time.Second {
		t.Errorf("Age = %v, want 1s", info.Age)
	}
	if got := loader.calls.Load(); got != 1 {
		t.Errorf("loader called %d times, want 1", got)
	}

	stats := m.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Reloads != 1 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestManager_ReloadsAfterTTL(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 21}
	m := NewManager(loader, Config{TTL: DefaultTTL})

	m.GetArtworkList(context.Background(), epoch)

	_, info := m.GetArtworkList(context.Background(), epoch.Add(DefaultTTL-time.Nanosecond))
	if !info.Cached {
		t.Error("entry should still be fresh just before TTL")
	}

	_, info = m.GetArtworkList(context.Background(), epoch.Add(DefaultTTL))
	if info.Cached {
		t.Error("entry at exactly TTL should be reloaded")
	}
	if !info.FetchedAt.Equal(epoch.Add(DefaultTTL)) {
		t.Errorf("FetchedAt = %v, want reload time", info.FetchedAt)
	}
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("loader called %d times, want 2", got)
	}
}

func TestManager_FallbackTTL(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 21, outcome: dataset.OutcomeCurated}
	m := NewManager(loader, Config{TTL: DefaultTTL, FallbackTTL: time.Hour})

	_, info := m.GetArtworkList(context.Background(), epoch)
	if info.Source != dataset.OutcomeCurated || info.ExpiresIn != time.Hour {
		t.Fatalf("info = %+v", info)
	}

	m.GetArtworkList(context.Background(), epoch.Add(59*time.Minute))
	m.GetArtworkList(context.Background(), epoch.Add(time.Hour))
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("loader called %d times, want 2", got)
	}
}

func TestManager_FallbackTTLDefaultsToTTL(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 21, outcome: dataset.OutcomeCurated}
	m := NewManager(loader, Config{TTL: DefaultTTL})

	m.GetArtworkList(context.Background(), epoch)
	_, info := m.GetArtworkList(context.Background(), epoch.Add(6*24*time.Hour))
	if !info.Cached {
		t.Error("curated entry should live for the full TTL by default")
	}
}

func TestManager_Invalidate(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 5}
	m := NewManager(loader, Config{})

	m.GetArtworkList(context.Background(), epoch)
	m.Invalidate()

	if _, ok := m.Snapshot(epoch); ok {
		t.Error("Snapshot should be empty after Invalidate")
	}

	_, info := m.GetArtworkList(context.Background(), epoch)
	if info.Cached {
		t.Error("call after Invalidate should reload")
	}
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("loader called %d times, want 2", got)
	}
}

func TestManager_Snapshot(t *testing.T) {
	t.Parallel()

	m := NewManager(&fakeLoader{size: 3}, Config{TTL: time.Hour})
	if _, ok := m.Snapshot(epoch); ok {
		t.Fatal("Snapshot should be empty before first load")
	}

	m.GetArtworkList(context.Background(), epoch)

	info, ok := m.Snapshot(epoch.Add(2 * time.Hour))
	if !ok {
		t.Fatal("Snapshot should report the loaded entry")
	}
	if info.Cached || info.Size != 3 || info.ExpiresIn != 0 {
		t.Errorf("Snapshot = %+v", info)
	}
	if m.Stats().Misses != 1 {
		t.Error("Snapshot must not count as a lookup")
	}
}

func TestManager_ConcurrentMissesCoalesce(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 21, gate: make(chan struct{})}
	m := NewManager(loader, Config{})

	const callers = 16
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	sizes := make([]int, callers)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			list, _ := m.GetArtworkList(context.Background(), epoch)
			sizes[i] = len(list)
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(loader.gate)
	wg.Wait()

	for i, n := range sizes {
		if n != 21 {
			t.Errorf("caller %d got %d artworks", i, n)
		}
	}
	if got := loader.calls.Load(); got != 1 {
		t.Errorf("loader called %d times, want 1", got)
	}
}

func TestManager_LoadDetachedFromCallerCancel(t *testing.T) {
	t.Parallel()

	loader := &fakeLoader{size: 21, gate: make(chan struct{})}
	m := NewManager(loader, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int)
	go func() {
		list, _ := m.GetArtworkList(ctx, epoch)
		done <- len(list)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	close(loader.gate)

	if n := <-done; n != 21 {
		t.Errorf("len = %d, want 21", n)
	}
	if loader.sawDone.Load() {
		t.Error("loader observed caller cancellation")
	}
	if _, ok := m.Snapshot(epoch); !ok {
		t.Error("canceled caller's load should still fill the slot")
	}
}
