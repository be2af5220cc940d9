package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ralona/nutritracker/internal/adapter"
	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/handler"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/server"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/workers"
	"github.com/ralona/nutritracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("nutritracker-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	if buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := store.NewConnectPostgres(connectCtx, cfg.Storage.DB, true, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	summaryCache := cache.New(cfg.Storage.Cache, log)
	defer summaryCache.Close()
	if err = summaryCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("summary cache unreachable, dashboards will be computed on every request")
	}

	var provider adapter.HealthProvider
	if cfg.Adapter.HealthBaseURL != "" {
		provider, err = adapter.NewHTTPHealthProvider(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating health provider")
		}
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, summaryCache, provider, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)
	bgWorkers.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	bgWorkers.Wait()
	log.Info().Msg("bye")
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
