// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	defaultHTTPAddress         = ":8080"
	defaultGRPCAddress         = ":3200"
	defaultRequestTimeout      = 15 * time.Second
	defaultTokenIssuer         = "market-pulse"
	defaultTokenDuration       = 24 * time.Hour
	defaultMarketTimeout       = 3 * time.Second
	defaultMaintenanceSchedule = "@every 10m"
	defaultAdapterAddress      = "http://localhost:8080"
	defaultAdapterTimeout      = 10 * time.Second
	defaultClientLocalDSN      = "market-pulse-client.db"
	defaultPriceRange          = 30
)

// applyDefaults fills every field still zero after the merge.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)
	setDefault(&cfg.App.LogLevel, "debug")

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	setDefault(&cfg.Storage.Driver, DriverMemory)

	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.GRPCAddress, defaultGRPCAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)

	cfg.Market.Remote = strings.ToLower(strings.TrimSpace(cfg.Market.Remote))
	setDefault(&cfg.Market.Remote, RemoteNone)
	setDefault(&cfg.Market.Timeout, defaultMarketTimeout)

	setDefault(&cfg.Workers.MaintenanceSchedule, defaultMaintenanceSchedule)

	setDefault(&cfg.Adapter.HTTPAddress, defaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, defaultAdapterTimeout)

	setDefault(&cfg.Client.LocalDSN, defaultClientLocalDSN)
	setDefault(&cfg.Client.PriceRange, defaultPriceRange)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and a positive duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: driver %s needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverRedis:
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis driver needs an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	switch cfg.Market.Remote {
	case RemoteNone:
	case RemoteHTTP:
		if cfg.Market.BaseURL == "" {
			return fmt.Errorf("%w: http remote needs a base URL", ErrInvalidMarketConfigs)
		}
	case RemoteS3:
		if cfg.Market.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 remote needs a bucket", ErrInvalidMarketConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown remote %q", ErrInvalidMarketConfigs, cfg.Market.Remote)
	}

	if _, err := cron.ParseStandard(cfg.Workers.MaintenanceSchedule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.LocalDSN == "" || strings.Contains(cfg.LocalDSN, "memory") {
		return ErrInvalidClientConfigs
	}

	if cfg.PriceRange != 7 && cfg.PriceRange != 30 {
		return fmt.Errorf("%w: price range must be 7 or 30", ErrInvalidClientConfigs)
	}

	return nil
}
