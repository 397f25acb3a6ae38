// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Cache     CacheConfig     `koanf:"cache"`
	Selection SelectionConfig `koanf:"selection"`
	Image     ImageConfig     `koanf:"image"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatasetConfig controls the MoMA collection download.
type DatasetConfig struct {
	URL              string        `koanf:"url"`
	UserAgent        string        `koanf:"user_agent"`
	Timeout          time.Duration `koanf:"timeout"`
	MaxBytes         int64         `koanf:"max_bytes"`
	SampleSize       int           `koanf:"sample_size"`
	MinFetchInterval time.Duration `koanf:"min_fetch_interval"`
	BreakerFailures  uint32        `koanf:"breaker_failures"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// CacheConfig controls the in-memory artwork list cache.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
	// FallbackTTL applies when only curated records were loaded. Zero means TTL.
	FallbackTTL time.Duration `koanf:"fallback_ttl"`
	// WarmOnStartup loads the list before the first request.
	WarmOnStartup bool `koanf:"warm_on_startup"`
}

// SelectionConfig controls how calendar days are computed.
type SelectionConfig struct {
	// Timezone is an IANA zone name; "Local" uses the host zone.
	Timezone string `koanf:"timezone"`
}

// Location resolves Timezone. Validate has already rejected unknown zones.
func (s SelectionConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// ImageConfig controls the placeholder image endpoint.
type ImageConfig struct {
	// PlaceholderURL must contain exactly one %s for the object ID.
	PlaceholderURL string `koanf:"placeholder_url"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
