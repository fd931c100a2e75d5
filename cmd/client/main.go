package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-movie-client/internal/adapter"
	"github.com/MKhiriev/go-movie-client/internal/client"
	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/service"
	"github.com/MKhiriev/go-movie-client/internal/store"
	"github.com/MKhiriev/go-movie-client/internal/telemetry"
	"github.com/MKhiriev/go-movie-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const serviceName = "movie-client"

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	log := logger.NewClientLogger(serviceName, logFile(cfg))
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, serviceName, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Warn().Err(err).Msg("tracing unavailable")
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create session store")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer storages.Close()

	movieAPI, err := adapter.NewHTTPMovieAPI(cfg.Adapter, storages.SessionStore, log)
	if err != nil {
		log.Error().Err(err).Msg("create movie api adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app, err := client.NewApp(client.AppOpts{
		Services:  service.NewClientServices(storages, movieAPI, log),
		BuildInfo: buildInfo,
		Logger:    log,
	})
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, append([]string{serviceName}, args...)); err != nil {
		return 1
	}
	return 0
}

func logFile(cfg *config.ClientConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.App.LogFile
}
