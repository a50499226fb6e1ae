package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/jobly/internal/config"
	"github.com/deppfellow/jobly/internal/database"
	"github.com/deppfellow/jobly/internal/handler"
	"github.com/deppfellow/jobly/internal/lib/health"
	"github.com/deppfellow/jobly/internal/logger"
	"github.com/deppfellow/jobly/internal/repository"
	"github.com/deppfellow/jobly/internal/router"
	"github.com/deppfellow/jobly/internal/scheduler"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/deppfellow/jobly/internal/service"
)

const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	// Local databases are migrated by hand.
	if cfg.Primary.Env != "local" {
		if err := database.Migrate(context.Background(), &log, database.DSN(&cfg.Database)); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := cfg.Observability.HealthChecks
	var healthScheduler *scheduler.Scheduler
	if checks.Enabled {
		healthScheduler = scheduler.New(health.ForServer(srv, checks.Checks...), checks.Interval, &log)
		if err := healthScheduler.Start(ctx); err != nil {
			log.Error().Err(err).Msg("failed to start health check scheduler")
			healthScheduler = nil
		}
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	if healthScheduler != nil {
		healthScheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}
