// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package supervisor provides process supervision for Daily MoMA using suture v4.

The tree separates the data layer from the API layer:

	RootSupervisor ("dailymoma")
	├── DataSupervisor ("data-layer")
	│   └── WarmUpService (if CACHE_WARM_ON_STARTUP)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. A service that returns
suture.ErrDoNotRestart (the one-shot warm-up) is removed instead. Supervisor
events are logged through sutureslog into the zerolog-backed slog logger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewWarmUpService(cacheManager, time.Now))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

After shutdown, UnstoppedServiceReport lists any service that exceeded the
shutdown timeout.
*/
package supervisor
