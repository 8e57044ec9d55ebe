// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with snake_case keys and durations
// accepted either as Go duration strings or as nanosecond numbers.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app"`

	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
		Redis  struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Market struct {
		Remote  string   `json:"remote"`
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
		S3      S3       `json:"s3"`
	} `json:"market"`

	Workers struct {
		MaintenanceSchedule string `json:"maintenance_schedule"`
	} `json:"workers"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Client struct {
		LocalDSN   string `json:"local_dsn"`
		LogFile    string `json:"log_file"`
		PriceRange int    `json:"price_range"`
	} `json:"client"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
		},
		Storage: Storage{
			Driver: j.Storage.Driver,
			DSN:    j.Storage.DSN,
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Market: Market{
			Remote:  j.Market.Remote,
			BaseURL: j.Market.BaseURL,
			Timeout: time.Duration(j.Market.Timeout),
			S3:      j.Market.S3,
		},
		Workers: Workers{MaintenanceSchedule: j.Workers.MaintenanceSchedule},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Client: Client{
			LocalDSN:   j.Client.LocalDSN,
			LogFile:    j.Client.LogFile,
			PriceRange: j.Client.PriceRange,
		},
	}, nil
}

// Duration is a [time.Duration] that unmarshals from "30s" or 30000000000.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
