package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"brandscope/api/internal/config"
	"brandscope/api/internal/handlers"
	"brandscope/api/internal/jobs"
	"brandscope/api/internal/log"
	"brandscope/api/internal/metrics"
	"brandscope/api/internal/security"
	"brandscope/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	stats := metrics.NewCollector()
	verifier := security.NewGoogleVerifier(cfg.Google.ClientID, cfg.Google.Issuers, cfg.Google.JWKSURL)

	handlerSet := handlers.NewHandlerSet(logger, cfg, verifier, stats)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet, stats)

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		users, sessions, projects := handlerSet.Stores()
		scheduler = jobs.NewScheduler(cfg.Jobs.StatsSchedule, users, sessions, projects, stats, logger)
		if err := scheduler.Start(); err != nil {
			logger.Error().Err(err).Msg("scheduler start failed")
		}
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	if scheduler != nil {
		scheduler.Stop()
	}

	logger.Info().Msg("server exited cleanly")
}
