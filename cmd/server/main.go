// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/handler"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/server"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/internal/workers"
	"github.com/MKhiriev/market-pulse/models"
)

const devVersion = "dev"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("market-pulse-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	if cfg.App.Version == "" {
		cfg.App.Version = devVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.KV.Close(); err != nil {
			log.Err(err).Msg("error closing storage")
		}
	}()

	c, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading catalog")
	}

	remote, err := market.NewRemoteSource(cfg.Market)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote fixture source")
	}
	provider := market.NewProvider(remote, cfg.Market.Timeout, log)

	services, err := service.NewServices(storages, c, provider, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers, err := workers.NewWorkers(storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}
	bgWorkers.Run()
	defer bgWorkers.Stop()

	srv, err := server.NewServer(handlers, storages.KV, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", valueOrNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", valueOrNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", valueOrNA(info.BuildCommit()))

	return info
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
