// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/metrics"
	"github.com/tomtom215/dailymoma/internal/models"
)

// Outcome names where a candidate list came from.
type Outcome string

const (
	OutcomeRemote  Outcome = "remote"
	OutcomeCurated Outcome = "curated"
)

// LoadResult describes one LoadCandidateList call. Err is the absorbed
// upstream error for curated outcomes and is only meant for logging.
type LoadResult struct {
	Outcome       Outcome
	RawCount      int
	FilteredCount int
	SampledCount  int
	Total         int
	Duration      time.Duration
	Err           error
}

// Provider builds the ordered candidate list: curated baseline followed by a
// filtered, downsampled slice of the remote collection.
type Provider struct {
	fetcher    Fetcher
	sampleSize int
	limiter    *rate.Limiter
	url        string

	mu     sync.RWMutex
	last   LoadResult
	loaded bool
}

// New creates a Provider that fetches cfg.URL through a circuit breaker.
func New(cfg Config) *Provider {
	return NewProvider(NewCircuitBreakerFetcher(NewClient(cfg), cfg), cfg)
}

// NewProvider creates a Provider around an arbitrary Fetcher. A positive
// cfg.MinFetchInterval limits how often the fetcher is attempted; attempts in
// between fail with ErrThrottled.
func NewProvider(fetcher Fetcher, cfg Config) *Provider {
	p := &Provider{
		fetcher:    fetcher,
		sampleSize: cfg.SampleSize,
		url:        cfg.URL,
	}
	if cfg.MinFetchInterval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(cfg.MinFetchInterval), 1)
	}
	return p
}

// LoadCandidateList returns the candidate list. It never fails: any upstream
// problem yields the curated baseline with Outcome OutcomeCurated.
func (p *Provider) LoadCandidateList(ctx context.Context) ([]models.Artwork, LoadResult) {
	start := time.Now()

	list, result := p.load(ctx)
	result.Total = len(list)
	result.Duration = time.Since(start)

	metrics.RecordDatasetLoad(string(result.Outcome), result.Duration,
		result.RawCount, result.FilteredCount, result.SampledCount, result.Total)

	log := logging.WithComponent("dataset")
	if result.Err != nil {
		metrics.RecordDatasetFetchError(errorType(result.Err))
		log.Warn().Err(result.Err).
			Str("error_type", errorType(result.Err)).
			Int("total", result.Total).
			Msg("Falling back to curated artworks")
	} else {
		log.Info().
			Int("raw", result.RawCount).
			Int("filtered", result.FilteredCount).
			Int("sampled", result.SampledCount).
			Int("total", result.Total).
			Dur("duration", result.Duration).
			Msg("Loaded artworks from collection")
	}

	p.mu.Lock()
	p.last = result
	p.loaded = true
	p.mu.Unlock()

	return list, result
}

func (p *Provider) load(ctx context.Context) ([]models.Artwork, LoadResult) {
	if p.limiter != nil && !p.limiter.Allow() {
		return Curated(), LoadResult{Outcome: OutcomeCurated, Err: ErrThrottled}
	}

	body, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return Curated(), LoadResult{Outcome: OutcomeCurated, Err: err}
	}

	records, rawCount, err := parseCollection(body)
	if err != nil {
		return Curated(), LoadResult{Outcome: OutcomeCurated, RawCount: rawCount, Err: err}
	}

	filtered := Filter(records)
	sampled := Downsample(filtered, p.sampleSize)

	list := make([]models.Artwork, 0, len(curated)+len(sampled))
	list = append(list, curated...)
	list = append(list, sampled...)

	return list, LoadResult{
		Outcome:       OutcomeRemote,
		RawCount:      rawCount,
		FilteredCount: len(filtered),
		SampledCount:  len(sampled),
	}
}

// LastResult returns the most recent load result, if any.
func (p *Provider) LastResult() (LoadResult, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last, p.loaded
}

// URL returns the upstream collection URL.
func (p *Provider) URL() string {
	return p.url
}

// CircuitState reports the upstream breaker state, or "none" when the
// fetcher has no breaker.
func (p *Provider) CircuitState() string {
	if s, ok := p.fetcher.(interface{ State() string }); ok {
		return s.State()
	}
	return "none"
}
