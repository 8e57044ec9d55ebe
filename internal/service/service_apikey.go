// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/market-pulse/internal/crypto"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

const (
	APIKeyPrefix = "mp_live_"
	apiKeyBytes  = 24
	apiKeyMask   = "••••••••••••"
)

type apiKeyService struct {
	repo store.APIKeyRepository

	// sealer encrypts keys at rest; the repository never sees plaintext.
	sealer crypto.Sealer

	// random is crypto/rand.Reader outside tests.
	random io.Reader

	logger *logger.Logger
}

func NewAPIKeyService(repo store.APIKeyRepository, sealer crypto.Sealer, logger *logger.Logger) APIKeyService {
	return &apiKeyService{repo: repo, sealer: sealer, random: rand.Reader, logger: logger}
}

func (s *apiKeyService) Get(ctx context.Context, user models.User) (models.APIKeyResponse, error) {
	if err := authorize(user, entitlement.APIKeyRead); err != nil {
		return models.APIKeyResponse{}, err
	}

	sealed, err := s.repo.Get(ctx, user.Email)
	if err != nil {
		return models.APIKeyResponse{}, fmt.Errorf("api key load failed: %w", err)
	}
	key, err := s.sealer.Open(sealed)
	switch {
	case errors.Is(err, crypto.ErrNotSealed), errors.Is(err, crypto.ErrMalformedSeal), errors.Is(err, crypto.ErrOpenFailed):
		// Corrupt value or a changed server secret: the key is unusable, so
		// the user sees none and can generate a fresh one.
		logger.FromContext(ctx).Warn().Err(err).Str("email", user.Email).Msg("stored api key cannot be opened")
		return models.APIKeyResponse{}, nil
	case err != nil:
		return models.APIKeyResponse{}, fmt.Errorf("api key open failed: %w", err)
	}
	return models.APIKeyResponse{Key: key, Masked: MaskAPIKey(key)}, nil
}

// Generate creates and stores a new key, replacing any previous one.
func (s *apiKeyService) Generate(ctx context.Context, user models.User) (models.APIKeyResponse, error) {
	if err := authorize(user, entitlement.APIKeyGenerate); err != nil {
		return models.APIKeyResponse{}, err
	}

	key, err := NewAPIKey(s.random)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("api key generation failed")
		return models.APIKeyResponse{}, err
	}
	sealed, err := s.sealer.Seal(key)
	if err != nil {
		return models.APIKeyResponse{}, fmt.Errorf("api key seal failed: %w", err)
	}
	if err = s.repo.Save(ctx, user.Email, sealed); err != nil {
		return models.APIKeyResponse{}, fmt.Errorf("api key save failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("email", user.Email).Msg("api key rotated")
	return models.APIKeyResponse{Key: key, Masked: MaskAPIKey(key)}, nil
}

// NewAPIKey reads 24 bytes from r and returns them hex-encoded after
// APIKeyPrefix. A short read is ErrKeyGenerationFailed.
func NewAPIKey(r io.Reader) (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}
	return APIKeyPrefix + hex.EncodeToString(b), nil
}

// MaskAPIKey keeps the first 8 and last 4 characters of key.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return apiKeyMask
	}
	return key[:8] + apiKeyMask + key[len(key)-4:]
}
