// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/dailymoma/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDataset,
		c.validateCache,
		c.validateSelection,
		c.validateImage,
		c.validateSecurity,
		c.validateLogging,
	}

	for _, validator := range validators {
		if err := validator(); err != nil {
			return err
		}
	}
	return nil
}

// validEnvironments defines the allowed ENVIRONMENT values
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates the server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// Dataset limits
const (
	minDatasetMaxBytes = 1 << 20 // 1MB
	maxSampleSize      = 100000
	maxBreakerFailures = 100
)

// validateDataset validates the upstream collection settings
func (c *Config) validateDataset() error {
	if err := validateCollectionURL(c.Dataset.URL, "DATASET_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.Dataset.UserAgent) == "" {
		return fmt.Errorf("DATASET_USER_AGENT must not be empty")
	}
	if c.Dataset.Timeout <= 0 {
		return fmt.Errorf("DATASET_TIMEOUT must be positive")
	}
	if c.Dataset.MaxBytes < minDatasetMaxBytes {
		return fmt.Errorf("DATASET_MAX_BYTES must be at least 1MB (1048576 bytes)")
	}
	if c.Dataset.SampleSize < 1 || c.Dataset.SampleSize > maxSampleSize {
		return fmt.Errorf("DATASET_SAMPLE_SIZE must be between 1 and %d", maxSampleSize)
	}
	if c.Dataset.MinFetchInterval < 0 {
		return fmt.Errorf("DATASET_MIN_FETCH_INTERVAL must not be negative")
	}
	if c.Dataset.BreakerFailures < 1 || c.Dataset.BreakerFailures > maxBreakerFailures {
		return fmt.Errorf("DATASET_BREAKER_FAILURES must be between 1 and %d", maxBreakerFailures)
	}
	if c.Dataset.BreakerTimeout <= 0 {
		return fmt.Errorf("DATASET_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateCache validates cache freshness windows
func (c *Config) validateCache() error {
	if c.Cache.TTL < time.Minute {
		return fmt.Errorf("CACHE_TTL must be at least 1m")
	}
	if c.Cache.FallbackTTL < 0 {
		return fmt.Errorf("CACHE_FALLBACK_TTL must not be negative")
	}
	if c.Cache.FallbackTTL > c.Cache.TTL {
		return fmt.Errorf("CACHE_FALLBACK_TTL must not exceed CACHE_TTL")
	}
	return nil
}

// validateSelection checks that the timezone resolves
func (c *Config) validateSelection() error {
	if c.Selection.Timezone == "" {
		return fmt.Errorf("SELECTION_TIMEZONE must not be empty")
	}
	if _, err := c.Selection.Location(); err != nil {
		return fmt.Errorf("SELECTION_TIMEZONE is invalid: %w", err)
	}
	return nil
}

// validateImage validates the placeholder URL template
func (c *Config) validateImage() error {
	tmpl := c.Image.PlaceholderURL
	if n := strings.Count(tmpl, "%s"); n != 1 {
		return fmt.Errorf("IMAGE_PLACEHOLDER_URL must contain exactly one %%s, found %d", n)
	}
	if strings.Count(tmpl, "%") != 1 {
		return fmt.Errorf("IMAGE_PLACEHOLDER_URL must not contain other format verbs")
	}
	return validateCollectionURL(strings.Replace(tmpl, "%s", "id", 1), "IMAGE_PLACEHOLDER_URL")
}

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("CORS_ORIGINS entry %q is invalid: %w", origin, err)
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
