// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the terminal client.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Market  Market  `envPrefix:"MARKET_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Client  Client  `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional JSON config file merged last.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC key used to sign session tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	Version  string `env:"VERSION"`
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage driver names.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Storage selects and configures the server key-value backend.
type Storage struct {
	// Driver is one of memory, sqlite, postgres or redis.
	Driver string `env:"DRIVER"`

	// DSN is the sqlite file path or the postgres connection string.
	DSN string `env:"DSN"`

	Redis Redis `envPrefix:"REDIS_"`
}

type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	GRPCAddress    string        `env:"GRPC_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Remote fixture source kinds.
const (
	RemoteNone = "none"
	RemoteHTTP = "http"
	RemoteS3   = "s3"
)

// Market configures where market data fixtures are read from. The bundled
// fixtures are always consulted after the remote source.
type Market struct {
	// Remote is one of none, http or s3.
	Remote string `env:"REMOTE"`

	// BaseURL is the root of the HTTP fixture host.
	BaseURL string `env:"BASE_URL"`

	S3 S3 `envPrefix:"S3_"`

	// Timeout bounds a single remote fetch.
	Timeout time.Duration `env:"TIMEOUT"`
}

type S3 struct {
	Bucket          string `env:"BUCKET" json:"bucket"`
	Region          string `env:"REGION" json:"region"`
	Endpoint        string `env:"ENDPOINT" json:"endpoint"`
	Prefix          string `env:"PREFIX" json:"prefix"`
	AccessKeyID     string `env:"ACCESS_KEY_ID" json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`
}

// Workers configures background maintenance.
type Workers struct {
	// MaintenanceSchedule is a cron spec (standard five fields or a
	// descriptor such as "@every 10m").
	MaintenanceSchedule string `env:"MAINTENANCE_SCHEDULE"`
}

// Adapter configures how the client reaches the server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client settings.
type Client struct {
	// LocalDSN is the sqlite file backing the client's persisted keys.
	LocalDSN string `env:"LOCAL_DSN"`

	LogFile string `env:"LOG_FILE"`

	// PriceRange is the initial price chart window in days (7 or 30).
	PriceRange int `env:"PRICE_RANGE"`
}

// GetStructuredConfig builds and validates the server configuration from
// the process environment and command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}
