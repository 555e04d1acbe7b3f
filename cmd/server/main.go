// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/handler"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/queue"
	"github.com/MKhiriev/go-form-runner/internal/server"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-form-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	if cfg.Server.MintToken != "" {
		mintToken(cfg, log)
		return
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher := queue.NewPublisher(cfg.Storage.Redis, log)
	defer publisher.Close()

	services, err := service.NewServices(storages, publisher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Storage.FormsFile != "" {
		seed, err := store.LoadSeedFile(cfg.Storage.FormsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error reading forms seed")
		}
		created, err := services.FormService.Seed(ctx, seed.Forms)
		if err != nil {
			log.Fatal().Err(err).Msg("error seeding forms")
		}
		log.Info().Int("created", created).Int("total", len(seed.Forms)).Msg("forms seeded")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func mintToken(cfg *config.ServerConfig, log *logger.Logger) {
	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), cfg.Server.MintToken)
	if err != nil {
		log.Fatal().Err(err).Msg("error minting token")
	}
	fmt.Println(token.SignedString)
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
