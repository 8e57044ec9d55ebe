// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial config. Unset flags stay zero so
// they do not shadow other sources during the merge.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg            StructuredConfig
		httpAddress    NetAddress
		grpcAddress    NetAddress
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("market-pulse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP server address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session lifetime (e.g. 24h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: memory, sqlite, postgres, redis")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Storage DSN (sqlite file or postgres URI)")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address host:port")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout")

	fs.StringVar(&cfg.Market.Remote, "market-remote", "", "Remote fixtures: none, http, s3")
	fs.StringVar(&cfg.Market.BaseURL, "market-base-url", "", "HTTP fixtures base URL")
	fs.StringVar(&cfg.Market.S3.Bucket, "market-s3-bucket", "", "S3 fixtures bucket")

	fs.StringVar(&cfg.Workers.MaintenanceSchedule, "maintenance-schedule", "", "Maintenance cron spec")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Server base URL used by the client")
	fs.StringVar(&cfg.Client.LocalDSN, "local-db", "", "Client local sqlite file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". An empty host binds all interfaces.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
