package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/host"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("helios-keeper")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == config.DefaultAppVersion && buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	appDir, err := host.AppDir(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving app directory")
	}
	log = logger.NewHostLogger("host", appDir)

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := host.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating host")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("host stopped with error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
