// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/client"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/internal/tui"
	"github.com/MKhiriev/market-pulse/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewClientLogger("market-pulse-client", cfg.LogFile)
	logger.SetLevel(cfg.LogLevel)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localKV, local, err := store.NewClientStorage(context.Background(), cfg.LocalDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(local, serverAdapter, log)

	ui, err := tui.New(services, tui.Options{BuildInfo: buildInfo, PriceRange: cfg.PriceRange}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, localKV, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
