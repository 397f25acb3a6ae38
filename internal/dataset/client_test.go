// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClientConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestClient_Fetch_Success(t *testing.T) {
	t.Parallel()

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Title":"Broadway Boogie Woogie"}]`))
	}))
	defer server.Close()

	body, err := NewClient(testClientConfig(server.URL)).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(string(body), "Broadway Boogie Woogie") {
		t.Errorf("unexpected body %q", body)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
}

func TestClient_Fetch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		maxBytes int64
		wantErr  error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrUpstreamStatus,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: ErrUpstreamStatus,
		},
		{
			name: "lfs pointer",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("version https://git-lfs.github.com/spec/v1\noid sha256:abc\nsize 123\n"))
			},
			wantErr: ErrLFSPointer,
		},
		{
			name: "too large",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat("x", 64)))
			},
			maxBytes: 32,
			wantErr:  ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			cfg := testClientConfig(server.URL)
			if tt.maxBytes > 0 {
				cfg.MaxBytes = tt.maxBytes
			}

			_, err := NewClient(cfg).Fetch(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	cfg := testClientConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond

	_, err := NewClient(cfg).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if got := errorType(err); got != "timeout" {
		t.Errorf("errorType = %q, want timeout (err: %v)", got, err)
	}
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(testClientConfig(server.URL)).Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}
