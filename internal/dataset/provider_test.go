// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/dailymoma/internal/logging"
)

// collectionJSON builds an upstream-shaped payload with eligible records
// interleaved with ineligible ones.
func collectionJSON(eligible int) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < eligible; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"Title":"Collection Piece %03d","Artist":["Artist %d"],"ConstituentID":[%d],"Date":"19%02d","Medium":"Oil on canvas","Department":"Painting & Sculpture","Classification":"Painting","ObjectID":%d}`,
			i, i, i, i%100, 100000+i)
		fmt.Fprintf(&b, `,{"Title":"Untitled %03d","Artist":["Anonymous"],"Date":"1950","Medium":"Ink","ObjectID":%d}`, i, 200000+i)
	}
	b.WriteString("]")
	return b.String()
}

func testProviderConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.Timeout = 2 * time.Second
	cfg.SampleSize = 10
	cfg.MinFetchInterval = 0
	return cfg
}

func TestProvider_LoadCandidateList_Remote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(collectionJSON(35)))
	}))
	defer server.Close()

	p := New(testProviderConfig(server.URL))
	list, result := p.LoadCandidateList(context.Background())

	if result.Outcome != OutcomeRemote {
		t.Fatalf("Outcome = %q, want remote (err: %v)", result.Outcome, result.Err)
	}
	if result.Err != nil {
		t.Errorf("unexpected absorbed error: %v", result.Err)
	}
	if result.RawCount != 70 || result.FilteredCount != 35 || result.SampledCount != 10 {
		t.Errorf("counts raw=%d filtered=%d sampled=%d, want 70/35/10",
			result.RawCount, result.FilteredCount, result.SampledCount)
	}
	if len(list) != CuratedCount()+10 || result.Total != len(list) {
		t.Fatalf("len = %d (Total %d), want %d", len(list), result.Total, CuratedCount()+10)
	}

	baseline := Curated()
	for i := range baseline {
		if list[i].Title != baseline[i].Title {
			t.Fatalf("list[%d] = %q, want curated %q", i, list[i].Title, baseline[i].Title)
		}
	}

	// step = 35/10 = 3, so positions 0, 3, 6, ...
	first := list[CuratedCount()]
	if first.Title != "Collection Piece 000" || first.ObjectID != "100000" {
		t.Errorf("first sampled = %q/%q", first.Title, first.ObjectID)
	}
	if second := list[CuratedCount()+1]; second.Title != "Collection Piece 003" {
		t.Errorf("second sampled = %q, want Collection Piece 003", second.Title)
	}
}

func TestProvider_LoadCandidateList_FallsBackToCurated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: ErrUpstreamStatus,
		},
		{
			name: "lfs pointer",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("version https://git-lfs.github.com/spec/v1\n"))
			},
			wantErr: ErrLFSPointer,
		},
		{
			name: "not an array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"artworks":[]}`))
			},
			wantErr: ErrNotArray,
		},
		{
			name: "empty array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantErr: ErrEmptyCollection,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"Title":`))
			},
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			list, result := New(testProviderConfig(server.URL)).LoadCandidateList(context.Background())
			if len(list) != 21 {
				t.Errorf("len = %d, want 21", len(list))
			}
			if result.Outcome != OutcomeCurated {
				t.Errorf("Outcome = %q, want curated", result.Outcome)
			}
			if !errors.Is(result.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", result.Err, tt.wantErr)
			}
		})
	}
}

func TestProvider_AllFilteredStillRemote(t *testing.T) {
	t.Parallel()

	fake := &fakeFetcher{body: []byte(`[{"Title":"Study for a Portrait","Artist":["Francis Bacon"],"Date":"1953","Medium":"Oil","ObjectID":1}]`)}
	list, result := NewProvider(fake, testProviderConfig("")).LoadCandidateList(context.Background())

	if result.Outcome != OutcomeRemote {
		t.Errorf("Outcome = %q, want remote", result.Outcome)
	}
	if len(list) != 21 {
		t.Errorf("len = %d, want 21", len(list))
	}
}

func TestProvider_Throttle(t *testing.T) {
	t.Parallel()

	fake := &fakeFetcher{body: []byte(collectionJSON(3))}
	cfg := testProviderConfig("")
	cfg.MinFetchInterval = time.Hour

	p := NewProvider(fake, cfg)

	_, first := p.LoadCandidateList(context.Background())
	if first.Outcome != OutcomeRemote {
		t.Fatalf("first Outcome = %q", first.Outcome)
	}

	list, second := p.LoadCandidateList(context.Background())
	if !errors.Is(second.Err, ErrThrottled) {
		t.Errorf("second Err = %v, want ErrThrottled", second.Err)
	}
	if len(list) != 21 {
		t.Errorf("throttled len = %d, want 21", len(list))
	}
	if got := fake.calls.Load(); got != 1 {
		t.Errorf("fetcher called %d times, want 1", got)
	}

	last, ok := p.LastResult()
	if !ok || last.Outcome != OutcomeCurated {
		t.Errorf("LastResult = %+v, %v", last, ok)
	}
}

func TestProvider_CircuitState(t *testing.T) {
	t.Parallel()

	if got := NewProvider(&fakeFetcher{}, DefaultConfig()).CircuitState(); got != "none" {
		t.Errorf("CircuitState() = %q, want none", got)
	}
	if got := New(DefaultConfig()).CircuitState(); got != "closed" {
		t.Errorf("CircuitState() = %q, want closed", got)
	}
}

func TestCuratedAndSample(t *testing.T) {
	t.Parallel()

	c := Curated()
	if len(c) != 21 {
		t.Fatalf("Curated() len = %d, want 21", len(c))
	}
	s := Sample()
	if len(s) != 5 {
		t.Fatalf("Sample() len = %d, want 5", len(s))
	}
	for i := range s {
		if s[i].Title != c[i].Title {
			t.Errorf("Sample()[%d] = %q, want %q", i, s[i].Title, c[i].Title)
		}
	}

	c[0].Title = "mutated"
	if Curated()[0].Title != "The Starry Night" {
		t.Error("Curated() returned shared backing array")
	}
}

func TestProvider_LogsUnderDatasetComponent(t *testing.T) {
	var buf bytes.Buffer
	original := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(original)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	p := New(testProviderConfig(server.URL))
	if _, result := p.LoadCandidateList(context.Background()); result.Outcome != OutcomeCurated {
		t.Fatalf("Outcome = %q, want curated", result.Outcome)
	}

	out := buf.String()
	if !strings.Contains(out, `"component":"dataset"`) || !strings.Contains(out, "Falling back to curated artworks") {
		t.Errorf("log output = %s", out)
	}
}
