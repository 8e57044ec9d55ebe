// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type clientSessionService struct {
	local   store.LocalRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientSessionService(local store.LocalRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{local: local, adapter: serverAdapter, logger: logger}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.SessionResponse, error) {
	saved, err := s.local.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.SessionResponse{}, ErrNotSignedIn
	}
	if err != nil {
		return models.SessionResponse{}, err
	}

	s.adapter.SetToken(saved.Token)
	session, err := s.adapter.Session(ctx)
	if err != nil {
		err = MapAdapterError(err)
		if !errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			return models.SessionResponse{}, err
		}

		s.logger.Info().Msg("stored session rejected by server")
		s.adapter.SetToken("")
		if clearErr := s.local.ClearSession(ctx); clearErr != nil {
			s.logger.Err(clearErr).Msg("local session clear failed")
		}
		return models.SessionResponse{}, ErrNotSignedIn
	}

	saved.User = session.User
	if err = s.local.SaveSession(ctx, saved); err != nil {
		s.logger.Err(err).Msg("local session refresh failed")
	}
	if session.ExpiresAt == "" && !saved.ExpiresAt.IsZero() {
		session.ExpiresAt = saved.ExpiresAt.Format(time.RFC3339)
	}
	return session, nil
}

func (s *clientSessionService) SignIn(ctx context.Context, email, password string) (models.SessionResponse, error) {
	session, err := s.adapter.SignIn(ctx, models.SignInRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return models.SessionResponse{}, MapAdapterError(err)
	}

	saved := models.LocalSession{Token: s.adapter.Token(), User: session.User}
	if expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt); err == nil {
		saved.ExpiresAt = expiresAt
	}
	if err = s.local.SaveSession(ctx, saved); err != nil {
		return models.SessionResponse{}, err
	}
	return session, nil
}

func (s *clientSessionService) SignOut(ctx context.Context) error {
	if err := s.adapter.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("server sign out failed")
	}
	return s.local.ClearSession(ctx)
}

// Theme returns the stored theme, dark when unset or unknown.
func (s *clientSessionService) Theme(ctx context.Context) string {
	theme, err := s.local.Theme(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("theme load failed")
	}
	if theme != ThemeLight {
		return ThemeDark
	}
	return theme
}

func (s *clientSessionService) SaveTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return s.local.SaveTheme(ctx, theme)
}
