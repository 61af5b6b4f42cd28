package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-panel/internal/adapter"
	"github.com/MKhiriev/go-auth-panel/internal/client"
	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/internal/tui"
	"github.com/MKhiriev/go-auth-panel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	version := buildVersion
	printBuildInfo()

	cfg, err := config.GetPanelConfig()
	if err != nil {
		logger.NewLogger("go-auth-panel").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewPanelLogger("go-auth-panel", cfg.App.LogPath)

	var opts []store.Option
	if cfg.UsesRESTStore() {
		repo, err := adapter.NewRESTUserRepository(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating REST user repository")
		}
		opts = append(opts, store.WithUserRepository(repo))
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if version == "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	services, err := service.NewServices(storages, cfg.App, cfg.Storage.Session, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init panel app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("panel run error")
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
