// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

func sessionResponse(s models.Session) models.SessionResponse {
	resp := models.SessionResponse{
		User:        s.User,
		Entitlement: entitlement.Resolve(s.User.Subscription),
	}
	if !s.ExpiresAt.IsZero() {
		resp.ExpiresAt = s.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().Err(err).Msg("invalid sign-in body")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid sign-in request")
		return
	}

	session, token, err := h.services.AuthService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "sign-in failed")
		return
	}

	log.Debug().Str("session", session.ID).Str("tier", string(session.User.Subscription)).Msg("user signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, sessionResponse(session), http.StatusOK)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeServiceError(w, r, h.services.AuthService.SignUp(r.Context(), req), "sign-up requested")
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "sign-out without session")
		return
	}

	if err = h.services.AuthService.SignOut(r.Context(), session.ID); err != nil {
		writeServiceError(w, r, err, "sign-out failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	_, _ = utils.WriteJSON(w, sessionResponse(session), http.StatusOK)
}

func (h *Handler) entitlement(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	_, _ = utils.WriteJSON(w, entitlement.Resolve(session.User.Subscription), http.StatusOK)
}
