// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

// Command api is the entry point for the Planora HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis (optional snapshot warm cache).
//  4. Construct the remote data service client (skipped in demo mode).
//  5. Restore cached snapshots, then fetch fresh ones.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planora/api/internal/api"
	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/core/event"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/internal/core/venue"
	"github.com/planora/api/internal/platform/config"
	"github.com/planora/api/internal/platform/constants"
	"github.com/planora/api/internal/platform/middleware"
	"github.com/planora/api/internal/platform/remote"
	"github.com/planora/api/internal/platform/sec"
	"github.com/planora/api/internal/platform/snapshot"
	"github.com/planora/api/internal/seed"

	redisstore "github.com/planora/api/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "planora"))
	slog.SetDefault(log)

	log.Info("[Planora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "planora"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("demo_mode", cfg.DemoMode),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Redis (optional) ───────────────────────────────────────────────
	var snapshotCache snapshot.Cache
	var checkCache func() error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		snapshotCache = redisstore.NewSnapshotCache(rdb)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 4. Remote Data Service ────────────────────────────────────────────
	var remoteClient *remote.Client
	var checkRemote func() error

	if !cfg.DemoMode {
		remoteClient = remote.NewClient(cfg.RemoteURL, cfg.RemoteAPIKey, log)
		checkRemote = func() error {
			return remoteClient.Ping(context.Background())
		}
	}

	// ── 5. Token Verification ─────────────────────────────────────────────
	var verifier middleware.TokenVerifier
	if cfg.JWTSecret != "" {
		jwtVerifier, err := sec.NewTokenVerifier(cfg.JWTSecret)
		must(log, err, "initialize token verifier")
		verifier = jwtVerifier
	} else {
		log.Warn("authentication_disabled")
	}
	authRequired := cfg.JWTSecret != ""

	// ── 6. Repositories ───────────────────────────────────────────────────
	availabilityRepo := availability.NewRemoteRepository(remoteClient, snapshotCache, log)
	reviewRepo := review.NewRemoteRepository(remoteClient, snapshotCache, log)
	bookingRepo := booking.NewRemoteRepository(remoteClient, snapshotCache, log)
	clientRepo := client.NewRemoteRepository(remoteClient, snapshotCache, log)
	providerRepo := provider.NewRemoteRepository(remoteClient, snapshotCache, log)
	venueRepo := venue.NewRemoteRepository(remoteClient, snapshotCache, log)
	eventRepo := event.NewRemoteRepository(remoteClient, snapshotCache, log)

	refreshers := []refresher{
		availabilityRepo, reviewRepo, bookingRepo,
		clientRepo, providerRepo, venueRepo, eventRepo,
	}

	if cfg.DemoMode {
		data := seed.Demo()
		clientRepo.Seed(data.Clients, data.CommLogs)
		providerRepo.Seed(data.Providers)
		venueRepo.Seed(data.Venues)
		eventRepo.Seed(data.Events, data.Tasks, data.Timeline)
		bookingRepo.Seed(data.Bookings)
		reviewRepo.Seed(data.Reviews)
		availabilityRepo.Seed(data.Slots)
		log.Info("demo_dataset_loaded")
	} else {
		// Serve stale cached snapshots while the first fetch is in flight.
		availabilityRepo.Restore(startupCtx)
		reviewRepo.Restore(startupCtx)
		bookingRepo.Restore(startupCtx)
		clientRepo.Restore(startupCtx)
		providerRepo.Restore(startupCtx)
		venueRepo.Restore(startupCtx)
		eventRepo.Restore(startupCtx)

		refreshAll(startupCtx, log, refreshers)
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	providerService := provider.NewService(providerRepo, reviewRepo, availabilityRepo, log)
	venueService := venue.NewService(venueRepo, reviewRepo, availabilityRepo, bookingRepo, log)
	clientService := client.NewService(clientRepo, bookingRepo, log)
	eventService := event.NewService(eventRepo, clientRepo, venueRepo, providerRepo, log)
	bookingService := booking.NewService(bookingRepo, log)
	reviewService := review.NewService(reviewRepo, ownerDirectory{
		providers: providerService,
		venues:    venueService,
	}, log)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckRemote: checkRemote,
		CheckCache:  checkCache,
	}, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Client:    client.NewHandler(clientService, authRequired),
		Provider:  provider.NewHandler(providerService, authRequired),
		Venue:     venue.NewHandler(venueService, authRequired),
		Event:     event.NewHandler(eventService, authRequired),
		Booking:   booking.NewHandler(bookingService, authRequired),
		Review:    review.NewHandler(reviewService, authRequired),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 10. Background Refresh ────────────────────────────────────────────
	if !cfg.DemoMode {
		go refreshLoop(serverCtx, log, cfg.RefreshInterval, refreshers)
	}

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Stop the refresh loop before draining requests.
	serverCancel()

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must aborts startup when a required initialization step fails.
func must(log *slog.Logger, err error, msg string) {
	if err != nil {
		log.Error(msg, slog.Any("error", err))
		os.Exit(1)
	}
}

// refresher is the slice of a repository the refresh loop needs.
type refresher interface {
	Refresh(ctx context.Context) error
}

// refreshAll fetches every snapshot once. Failures are logged and served
// from whatever snapshot (cached or empty) is already in place.
func refreshAll(ctx context.Context, log *slog.Logger, repos []refresher) {
	for _, repo := range repos {
		if err := repo.Refresh(ctx); err != nil {
			log.Error("snapshot_refresh_failed", slog.Any("error", err))
		}
	}
}

// refreshLoop refetches all snapshots on a fixed interval until ctx is
// cancelled.
func refreshLoop(ctx context.Context, log *slog.Logger, interval time.Duration, repos []refresher) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshAll(ctx, log, repos)
			log.Debug("snapshots_refreshed")
		}
	}
}

// ownerDirectory adapts the provider and venue services to the review
// domain's owner lookups.
type ownerDirectory struct {
	providers *provider.Service
	venues    *venue.Service
}

func (d ownerDirectory) HasProvider(id string) bool { return d.providers.HasProvider(id) }
func (d ownerDirectory) HasVenue(id string) bool    { return d.venues.HasVenue(id) }
