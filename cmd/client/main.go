package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cam-scan/internal/client"
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/service"
	"github.com/MKhiriev/go-cam-scan/internal/store"
	"github.com/MKhiriev/go-cam-scan/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-cam-scan").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI from here on
	log := logger.NewClientLogger("go-cam-scan", cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("thumbnail cache unavailable, continuing without it")
		storages = nil
	}

	services, err := service.NewClientServices(storages, cfg.Scan, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(ctx, cfg, services, storages, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
