// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/dailymoma/internal/api"
	"github.com/tomtom215/dailymoma/internal/artwork"
	"github.com/tomtom215/dailymoma/internal/cache"
	"github.com/tomtom215/dailymoma/internal/config"
	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/selector"
	"github.com/tomtom215/dailymoma/internal/supervisor/services"
)

// app holds the wired components.
type app struct {
	provider *dataset.Provider
	cache    *cache.Manager
	artworks *artwork.Service
	handler  *api.Handler
	server   *http.Server
	warmUp   *services.WarmUpService // nil unless CACHE_WARM_ON_STARTUP
}

// newApp wires dataset -> cache -> selector -> artwork service -> HTTP.
func newApp(cfg *config.Config) (*app, error) {
	loc, err := cfg.Selection.Location()
	if err != nil {
		return nil, fmt.Errorf("selection timezone: %w", err)
	}

	provider := dataset.New(datasetConfig(cfg.Dataset))
	manager := cache.NewManager(provider, cache.Config{
		TTL:         cfg.Cache.TTL,
		FallbackTTL: cfg.Cache.FallbackTTL,
	})
	svc := artwork.NewService(manager, selector.New(loc, time.Now), time.Now)

	a := &app{
		provider: provider,
		cache:    manager,
		artworks: svc,
	}

	handlerCfg := api.HandlerConfig{
		Artworks:       svc,
		Cache:          manager,
		Upstream:       provider,
		PlaceholderURL: cfg.Image.PlaceholderURL,
	}
	if cfg.Cache.WarmOnStartup {
		a.warmUp = services.NewWarmUpService(manager, time.Now)
		handlerCfg.WarmUp = a.warmUp
	}
	a.handler = api.NewHandler(handlerCfg)

	router := api.NewRouter(a.handler, middlewareConfig(cfg.Security))
	a.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// The first request after expiry waits for the dataset download.
		WriteTimeout:   cfg.Server.Timeout + cfg.Dataset.Timeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return a, nil
}

func datasetConfig(c config.DatasetConfig) dataset.Config {
	return dataset.Config{
		URL:              c.URL,
		UserAgent:        c.UserAgent,
		Timeout:          c.Timeout,
		MaxBytes:         c.MaxBytes,
		SampleSize:       c.SampleSize,
		MinFetchInterval: c.MinFetchInterval,
		BreakerFailures:  c.BreakerFailures,
		BreakerTimeout:   c.BreakerTimeout,
	}
}

func middlewareConfig(c config.SecurityConfig) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = c.CORSOrigins
	mw.RateLimitRequests = c.RateLimitReqs
	mw.RateLimitWindow = c.RateLimitWindow
	mw.RateLimitDisabled = c.RateLimitDisabled
	return mw
}
