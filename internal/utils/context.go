// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/market-pulse/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the context key under which the auth middleware stores
// the resolved [models.Session].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext returns the session stored by [WithSession].
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	return s, ok
}
