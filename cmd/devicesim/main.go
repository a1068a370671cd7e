package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/handler"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/metrics"
	"github.com/MKhiriev/go-cam-scan/internal/server"
	"github.com/MKhiriev/go-cam-scan/internal/simulator"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("devicesim")
	cfg, err := config.GetDeviceConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := simulator.OpenStorages(cfg.Device.StorageDirs)
	camera := simulator.New(cfg.Device, storages, log)

	handlers, err := handler.NewHandlers(camera, metrics.New(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("device", cfg.Device.Info.DisplayName()).
		Int("storages", len(storages)).
		Msg("device simulator starting")
	srv.RunServer()
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
