// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

type apiKeyRepository struct {
	kv     KV
	logger *logger.Logger
}

func NewAPIKeyRepository(kv KV, logger *logger.Logger) APIKeyRepository {
	return &apiKeyRepository{kv: kv, logger: logger}
}

// Get returns the key stored as a JSON string under apikey:{email}.
func (r *apiKeyRepository) Get(ctx context.Context, email string) (string, error) {
	var key string
	if _, err := getJSON(ctx, r.kv, APIKeyKey(email), &key); err != nil {
		if isDecodeError(err) {
			logger.FromContext(ctx).Warn().Err(err).Msg("malformed api key discarded")
			return "", nil
		}
		return "", err
	}
	return key, nil
}

// Save overwrites any previous key.
func (r *apiKeyRepository) Save(ctx context.Context, email, key string) error {
	return setJSON(ctx, r.kv, APIKeyKey(email), key, 0)
}

type settingsRepository struct {
	kv     KV
	logger *logger.Logger
}

func NewSettingsRepository(kv KV, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{kv: kv, logger: logger}
}

func (r *settingsRepository) Get(ctx context.Context, email string) (models.Settings, error) {
	var s models.Settings
	if _, err := getJSON(ctx, r.kv, SettingsKey(email), &s); err != nil {
		if isDecodeError(err) {
			logger.FromContext(ctx).Warn().Err(err).Msg("malformed settings discarded")
			return models.Settings{}, nil
		}
		return models.Settings{}, err
	}
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, email string, settings models.Settings) error {
	return setJSON(ctx, r.kv, SettingsKey(email), settings, 0)
}

// usageRepository keeps one counter per user and calendar day. Counters
// expire a day after the day they count has ended.
type usageRepository struct {
	kv     KV
	logger *logger.Logger
}

const usageRetention = 24 * time.Hour

func NewUsageRepository(kv KV, logger *logger.Logger) UsageRepository {
	return &usageRepository{kv: kv, logger: logger}
}

func (r *usageRepository) Searches(ctx context.Context, email string, day time.Time) (int, error) {
	raw, err := r.kv.Get(ctx, UsageKey(email, day))
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(string(raw))
	if err != nil || n < 0 {
		logger.FromContext(ctx).Warn().Str("value", string(raw)).Msg("malformed usage counter reset")
		return 0, nil
	}
	return n, nil
}

// IncrementSearches is a read-modify-write; callers serialise per user.
func (r *usageRepository) IncrementSearches(ctx context.Context, email string, day time.Time) (int, error) {
	n, err := r.Searches(ctx, email, day)
	if err != nil {
		return 0, err
	}
	n++

	if err := r.kv.Set(ctx, UsageKey(email, day), []byte(strconv.Itoa(n)), untilEndOfDay(day)+usageRetention); err != nil {
		return 0, err
	}
	return n, nil
}

func untilEndOfDay(day time.Time) time.Duration {
	y, m, d := day.Date()
	end := time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
	return end.Sub(day)
}
