// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	overview, err := h.services.SettingsService.Overview(r.Context(), session.User)
	if err != nil {
		writeServiceError(w, r, err, "settings overview failed")
		return
	}

	_, _ = utils.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) setEmailAlerts(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	var req models.EmailAlertsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, service.ErrInvalidDataProvided, "invalid email alerts body")
		return
	}

	settings, err := h.services.SettingsService.SetEmailAlerts(r.Context(), session.User, req.Enabled)
	if err != nil {
		writeServiceError(w, r, err, "email alerts update failed")
		return
	}

	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) getAPIKey(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	key, err := h.services.APIKeyService.Get(r.Context(), session.User)
	if err != nil {
		writeServiceError(w, r, err, "api key lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, key, http.StatusOK)
}

func (h *Handler) generateAPIKey(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	key, err := h.services.APIKeyService.Generate(r.Context(), session.User)
	if err != nil {
		writeServiceError(w, r, err, "api key generation failed")
		return
	}

	_, _ = utils.WriteJSON(w, key, http.StatusOK)
}
