// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, "HTTP_TIMEOUT"},
		{"dataset url with path and query", func(c *Config) {
			c.Dataset.URL = "https://example.com/data/Artworks.json?raw=1"
		}, ""},
		{"dataset url without host", func(c *Config) { c.Dataset.URL = "https:///Artworks.json" }, "DATASET_URL"},
		{"dataset url with credentials", func(c *Config) { c.Dataset.URL = "https://u:p@example.com/a.json" }, "DATASET_URL"},
		{"empty user agent", func(c *Config) { c.Dataset.UserAgent = " " }, "DATASET_USER_AGENT"},
		{"tiny max bytes", func(c *Config) { c.Dataset.MaxBytes = 1024 }, "DATASET_MAX_BYTES"},
		{"huge sample", func(c *Config) { c.Dataset.SampleSize = maxSampleSize + 1 }, "DATASET_SAMPLE_SIZE"},
		{"no throttle", func(c *Config) { c.Dataset.MinFetchInterval = 0 }, ""},
		{"negative throttle", func(c *Config) { c.Dataset.MinFetchInterval = -time.Second }, "DATASET_MIN_FETCH_INTERVAL"},
		{"zero breaker failures", func(c *Config) { c.Dataset.BreakerFailures = 0 }, "DATASET_BREAKER_FAILURES"},
		{"fallback longer than ttl", func(c *Config) {
			c.Cache.TTL = time.Hour
			c.Cache.FallbackTTL = 2 * time.Hour
		}, "CACHE_FALLBACK_TTL"},
		{"local timezone", func(c *Config) { c.Selection.Timezone = "Local" }, ""},
		{"two verbs", func(c *Config) { c.Image.PlaceholderURL = "https://img.example.com/%s/%s" }, "IMAGE_PLACEHOLDER_URL"},
		{"stray percent", func(c *Config) { c.Image.PlaceholderURL = "https://img.example.com/%d/%s" }, "IMAGE_PLACEHOLDER_URL"},
		{"relative placeholder", func(c *Config) { c.Image.PlaceholderURL = "/images/%s" }, "IMAGE_PLACEHOLDER_URL"},
		{"origin with path", func(c *Config) { c.Security.CORSOrigins = []string{"https://a.example.com/app"} }, "CORS_ORIGINS"},
		{"no origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"zero rate limit when disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "0.0.0.0", Port: 3000}
	if got := s.Addr(); got != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q", got)
	}
	s = ServerConfig{Host: "::1", Port: 8080}
	if got := s.Addr(); got != "[::1]:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
