// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/dailymoma/docs" // registers the swagger document
	"github.com/tomtom215/dailymoma/internal/config"
	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/supervisor"
	"github.com/tomtom215/dailymoma/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Str("timezone", cfg.Selection.Timezone).
		Dur("cache_ttl", cfg.Cache.TTL).
		Int("sample_size", cfg.Dataset.SampleSize).
		Bool("warm_on_startup", cfg.Cache.WarmOnStartup).
		Msg("Starting Daily MoMA")

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if app.warmUp != nil {
		tree.AddDataService(app.warmUp)
		logging.Info().Msg("Cache warm-up added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(app.server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor tree error")
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Daily MoMA stopped")
}
