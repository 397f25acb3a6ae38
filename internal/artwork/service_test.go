// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package artwork

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/dailymoma/internal/cache"
	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/models"
	"github.com/tomtom215/dailymoma/internal/selector"
	"github.com/tomtom215/dailymoma/internal/validation"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
}

// stubLists returns a fixed list and info, or panics when panicMsg is set.
type stubLists struct {
	list     []models.Artwork
	info     cache.Info
	panicMsg string
	calls    atomic.Int32
}

func (s *stubLists) GetArtworkList(_ context.Context, _ time.Time) ([]models.Artwork, cache.Info) {
	s.calls.Add(1)
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.list, s.info
}

type failingFetcher struct{}

func (failingFetcher) Fetch(_ context.Context) ([]byte, error) {
	return nil, fmt.Errorf("%w: 503 Service Unavailable", dataset.ErrUpstreamStatus)
}

func newTestService(lists ListSource) *Service {
	return NewService(lists, selector.New(time.UTC, fixedNow), fixedNow)
}

func strPtr(s string) *string { return &s }

func TestHandle_CuratedPairForMinDate(t *testing.T) {
	t.Parallel()

	lists := &stubLists{
		list: dataset.Curated(),
		info: cache.Info{Cached: true, Age: 2*time.Minute + 20*time.Second},
	}
	resp := newTestService(lists).Handle(context.Background(), strPtr("2024-09-01"))

	if resp.Source != models.SourceMoMA {
		t.Fatalf("Source = %q, want moma (error %q)", resp.Source, resp.Error)
	}
	if resp.Artwork1.Title != "Marilyn Monroe" || resp.Artwork2.Title != "Number 1, 1950 (Lavender Mist)" {
		t.Errorf("pair = %q / %q", resp.Artwork1.Title, resp.Artwork2.Title)
	}
	if resp.TotalArtworks != 21 {
		t.Errorf("TotalArtworks = %d, want 21", resp.TotalArtworks)
	}
	if resp.Date != "2024-09-01" {
		t.Errorf("Date = %q", resp.Date)
	}
	if resp.CacheInfo == nil || !resp.CacheInfo.Cached || resp.CacheInfo.CacheAge != 2 {
		t.Errorf("CacheInfo = %+v, want cached with age 2", resp.CacheInfo)
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty", resp.Error)
	}
}

func TestHandle_DateResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  *string
		want string
	}{
		{name: "absent", raw: nil, want: "2026-03-15"},
		{name: "blank", raw: strPtr("  "), want: "2026-03-15"},
		{name: "future clamps to today", raw: strPtr("2030-01-01"), want: "2026-03-15"},
		{name: "before minimum clamps", raw: strPtr("2020-01-01"), want: "2024-09-01"},
		{name: "rfc3339 converted to zone", raw: strPtr("2024-09-01T23:30:00-05:00"), want: "2024-09-02"},
		{name: "plain date", raw: strPtr("2025-06-15"), want: "2025-06-15"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newTestService(&stubLists{list: dataset.Curated()}).Handle(context.Background(), tt.raw)
			if resp.Date != tt.want {
				t.Errorf("Date = %q, want %q", resp.Date, tt.want)
			}
		})
	}
}

func TestHandle_InvalidDateFallsBackToSample(t *testing.T) {
	t.Parallel()

	lists := &stubLists{list: dataset.Curated()}
	resp := newTestService(lists).Handle(context.Background(), strPtr("not-a-date"))

	if resp.Source != models.SourceSample {
		t.Errorf("Source = %q, want sample", resp.Source)
	}
	if resp.Error != InvalidDateMessage {
		t.Errorf("Error = %q, want %q", resp.Error, InvalidDateMessage)
	}
	if resp.TotalArtworks != 5 {
		t.Errorf("TotalArtworks = %d, want 5", resp.TotalArtworks)
	}
	if resp.Date != "" || resp.CacheInfo != nil {
		t.Errorf("degraded response should omit date and cacheInfo: %+v", resp)
	}
	if resp.Artwork1.Title == "" || resp.Artwork2.Title == "" {
		t.Error("degraded response should still carry two artworks")
	}
	if lists.calls.Load() != 0 {
		t.Errorf("list source called %d times for an invalid date", lists.calls.Load())
	}
}

func TestHandle_EmptyListUsesClampedDateForSample(t *testing.T) {
	t.Parallel()

	resp := newTestService(&stubLists{}).Handle(context.Background(), strPtr("2024-09-01"))

	if resp.Source != models.SourceSample {
		t.Fatalf("Source = %q, want sample", resp.Source)
	}
	if resp.Error != selector.ErrEmptyList.Error() {
		t.Errorf("Error = %q", resp.Error)
	}
	// sample indices for 2024-09-01 are (3, 2)
	if resp.Artwork1.Title != "The Persistence of Memory" || resp.Artwork2.Title != "Les Demoiselles d'Avignon" {
		t.Errorf("pair = %q / %q", resp.Artwork1.Title, resp.Artwork2.Title)
	}
}

func TestHandle_PanicInListSourceIsContained(t *testing.T) {
	t.Parallel()

	resp := newTestService(&stubLists{panicMsg: "boom"}).Handle(context.Background(), nil)

	if resp.Source != models.SourceSample {
		t.Errorf("Source = %q, want sample", resp.Source)
	}
	if resp.Error != "internal error: boom" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestHandle_UpstreamFailureServesCuratedList(t *testing.T) {
	t.Parallel()

	cfg := dataset.DefaultConfig()
	cfg.MinFetchInterval = 0
	provider := dataset.NewProvider(failingFetcher{}, cfg)
	manager := cache.NewManager(provider, cache.Config{TTL: cache.DefaultTTL})
	svc := newTestService(manager)

	first := svc.Handle(context.Background(), strPtr("2024-09-01"))
	if first.Source != models.SourceMoMA {
		t.Fatalf("Source = %q, want moma", first.Source)
	}
	if first.TotalArtworks != 21 {
		t.Errorf("TotalArtworks = %d, want 21", first.TotalArtworks)
	}
	if first.CacheInfo == nil || first.CacheInfo.Cached {
		t.Errorf("first response should report a fresh load: %+v", first.CacheInfo)
	}

	second := svc.Handle(context.Background(), strPtr("2024-09-01"))
	if second.CacheInfo == nil || !second.CacheInfo.Cached {
		t.Errorf("second response should be cached: %+v", second.CacheInfo)
	}
	if second.Artwork1.Title != first.Artwork1.Title || second.Artwork2.Title != first.Artwork2.Title {
		t.Error("same date should select the same artwork")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := validation.ValidateStruct(&Query{Date: "2024/09/01"})
	if verr == nil {
		t.Fatal("expected validation failure")
	}
	err := error(newInvalidDate("2024/09/01", verr))

	if !errors.Is(err, ErrInvalidDate) {
		t.Error("errors.Is(err, ErrInvalidDate) = false")
	}
	var cause *validation.RequestValidationError
	if !errors.As(err, &cause) || !cause.HasTag("calendar_date") {
		t.Errorf("errors.As did not reach the validation cause: %v", cause)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "date" || ve.Value != "2024/09/01" {
		t.Errorf("ValidationError = %+v", ve)
	}
}
