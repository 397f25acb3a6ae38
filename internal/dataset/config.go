// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import "time"

// Defaults for the MoMA collection source.
const (
	DefaultURL        = "https://media.githubusercontent.com/media/MuseumofModernArt/collection/main/Artworks.json"
	DefaultUserAgent  = "Daily-MoMA-App/1.0"
	DefaultSampleSize = 1000
	DefaultTimeout    = 60 * time.Second
	DefaultMaxBytes   = 512 << 20
)

// Config controls the upstream fetch and sampling pipeline.
type Config struct {
	URL              string
	UserAgent        string
	Timeout          time.Duration
	MaxBytes         int64
	SampleSize       int
	MinFetchInterval time.Duration
	BreakerFailures  uint32
	BreakerTimeout   time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		URL:              DefaultURL,
		UserAgent:        DefaultUserAgent,
		Timeout:          DefaultTimeout,
		MaxBytes:         DefaultMaxBytes,
		SampleSize:       DefaultSampleSize,
		MinFetchInterval: time.Minute,
		BreakerFailures:  3,
		BreakerTimeout:   5 * time.Minute,
	}
}
