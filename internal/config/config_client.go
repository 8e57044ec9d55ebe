// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the terminal client view of the configuration.
type ClientConfig struct {
	// Adapter points at the market-pulse API.
	Adapter ClientAdapter

	// LocalDSN is the sqlite file holding the client's persisted keys.
	LocalDSN string

	LogFile    string
	LogLevel   string
	PriceRange int
}

type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetClientConfig assembles the client configuration. Server-only settings
// such as the token sign key are neither required nor exposed.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	cfg.applyDefaults()

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LocalDSN:   cfg.Client.LocalDSN,
		LogFile:    cfg.Client.LogFile,
		LogLevel:   cfg.App.LogLevel,
		PriceRange: cfg.Client.PriceRange,
	}

	return clientCfg, clientCfg.validate()
}
