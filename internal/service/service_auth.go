// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

// authService signs seeded users in against the catalog and keeps their
// sessions in a SessionRepository. The bearer token is an HS256 JWT whose
// "jti" is the session id.
type authService struct {
	catalog  *catalog.Catalog
	sessions store.SessionRepository
	ids      *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim; tokens with another issuer are rejected.
	tokenIssuer string

	// tokenDuration is also the lifetime of the stored session.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewAuthService(c *catalog.Catalog, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		catalog:       c,
		sessions:      sessions,
		ids:           utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// SignIn checks the credentials, stores a new session and returns it with
// its signed token.
//
// Returns ErrNoAccountFound for an unknown email and ErrIncorrectPassword
// for a wrong password.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)
	email = strings.TrimSpace(email)

	user, err := a.catalog.Authenticate(email, password)
	switch {
	case errors.Is(err, catalog.ErrUserNotFound):
		log.Info().Str("email", email).Msg("sign in with unknown email")
		return models.Session{}, models.Token{}, ErrNoAccountFound
	case errors.Is(err, catalog.ErrPasswordMismatch):
		log.Info().Str("email", email).Msg("sign in with wrong password")
		return models.Session{}, models.Token{}, ErrIncorrectPassword
	case err != nil:
		return models.Session{}, models.Token{}, fmt.Errorf("authentication failed: %w", err)
	}

	now := a.now()
	session := models.Session{
		ID:        a.ids.Generate(),
		User:      user.Public(),
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, session.ID, user.Email, now, session.ExpiresAt, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessions.Save(ctx, session); err != nil {
		log.Err(err).Str("session_id", session.ID).Msg("session save failed")
		return models.Session{}, models.Token{}, fmt.Errorf("session save failed: %w", err)
	}

	return session, token, nil
}

// CurrentSession verifies tokenString, loads its session and refreshes the
// user from the catalog so a tier change applies on the next request.
func (a *authService) CurrentSession(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	sessionID, err := token.SessionID()
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if session.User.Email != token.Email() {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.catalog.User(session.User.Email)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	session.User = user.Public()

	return session, nil
}

// SignOut deletes the session. Deleting an unknown session is not an error.
func (a *authService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("session delete failed: %w", err)
	}
	return nil
}

func (a *authService) SignUp(context.Context, models.SignInRequest) error {
	return ErrSignUpNotImplemented
}
