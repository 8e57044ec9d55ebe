// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

type sessionRepository struct {
	kv     KV
	now    func() time.Time
	logger *logger.Logger
}

func NewSessionRepository(kv KV, logger *logger.Logger) SessionRepository {
	return &sessionRepository{kv: kv, now: time.Now, logger: logger}
}

// Save persists session under session:{id}, expiring with the session.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", ErrSessionNotFound)
	}
	return setJSON(ctx, r.kv, SessionKey(session.ID), session, ttl)
}

func (r *sessionRepository) Get(ctx context.Context, id string) (models.Session, error) {
	var s models.Session
	found, err := getJSON(ctx, r.kv, SessionKey(id), &s)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Get").Msg("unreadable session")
		return models.Session{}, ErrSessionNotFound
	}
	if !found || s.ID != id || s.Expired(r.now()) {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Delete is idempotent.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, SessionKey(id))
}
