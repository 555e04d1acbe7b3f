// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-runner/internal/adapter"
	"github.com/MKhiriev/go-form-runner/internal/client"
	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-form-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	log.Debug().Str("version", cfg.App.Version).Str("address", cfg.Adapter.HTTPAddress).Msg("received configs")

	formAdapter, err := adapter.NewHTTPFormAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create form adapter")
	}

	services := service.NewClientServices(formAdapter, cfg.Form, log)

	app, err := client.NewApp(services, cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
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
