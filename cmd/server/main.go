package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-panel/internal/adapter"
	"github.com/MKhiriev/go-auth-panel/internal/config"
	"github.com/MKhiriev/go-auth-panel/internal/handler"
	"github.com/MKhiriev/go-auth-panel/internal/logger"
	"github.com/MKhiriev/go-auth-panel/internal/server"
	"github.com/MKhiriev/go-auth-panel/internal/service"
	"github.com/MKhiriev/go-auth-panel/internal/store"
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

	log := logger.NewLogger("go-auth-panel-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("password_scheme", cfg.App.PasswordScheme).
		Str("address", cfg.Server.HTTPAddress).
		Bool("rest_store", cfg.UsesRESTStore()).
		Msg("received configs")

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
	defer storages.Close()

	if version == "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	services, err := service.NewServices(storages, cfg.App, cfg.Storage.Session, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
