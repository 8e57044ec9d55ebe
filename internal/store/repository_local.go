// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

// ErrLocalSessionNotFound is returned when the client has no stored sign-in.
var ErrLocalSessionNotFound = errors.New("local session not found")

type localRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewLocalRepository stores the client's "session" and "theme-preference"
// keys in kv.
func NewLocalRepository(kv KV, logger *logger.Logger) LocalRepository {
	return &localRepository{kv: kv, logger: logger}
}

func (r *localRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	var s models.LocalSession
	found, err := getJSON(ctx, r.kv, LocalSessionKey, &s)
	if err != nil && !isDecodeError(err) {
		return models.LocalSession{}, err
	}
	if !found || err != nil || s.Token == "" {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	return s, nil
}

func (r *localRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	return setJSON(ctx, r.kv, LocalSessionKey, session, 0)
}

func (r *localRepository) ClearSession(ctx context.Context) error {
	return r.kv.Delete(ctx, LocalSessionKey)
}

// Theme returns the stored theme or "" when unset.
func (r *localRepository) Theme(ctx context.Context) (string, error) {
	var theme string
	if _, err := getJSON(ctx, r.kv, LocalThemeKey, &theme); err != nil && !isDecodeError(err) {
		return "", err
	}
	return theme, nil
}

func (r *localRepository) SaveTheme(ctx context.Context, theme string) error {
	return setJSON(ctx, r.kv, LocalThemeKey, theme, 0)
}
