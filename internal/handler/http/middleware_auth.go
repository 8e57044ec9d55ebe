// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

// auth resolves the bearer token to a live session and stores it in the
// request context under [utils.SessionCtxKey]. Missing, malformed, expired
// or revoked tokens answer 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(ErrInvalidAuthorizationHeader).AnErr("cause", err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		session, err := h.services.AuthService.CurrentSession(r.Context(), tokenString)
		if err != nil {
			writeServiceError(w, r, err, "session resolution failed")
			return
		}

		ctx := log.With().Str("user", session.User.Email).Logger().WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// sessionFromRequest returns the session stored by [Handler.auth].
func sessionFromRequest(r *http.Request) (models.Session, error) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}, errNoSessionInContext
	}
	return session, nil
}
