// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

func (h *Handler) getWatchlist(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	items, err := h.services.WatchlistService.Load(r.Context(), session.User)
	if err != nil {
		writeServiceError(w, r, err, "watchlist load failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.WatchlistResponse{Items: items}, http.StatusOK)
}

func (h *Handler) addToWatchlist(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	var req models.WatchlistRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, service.ErrInvalidDataProvided, "invalid watchlist body")
		return
	}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid watchlist request")
		return
	}

	items, changed, err := h.services.WatchlistService.Add(r.Context(), session.User, req.Symbol)
	if err != nil {
		writeServiceError(w, r, err, "watchlist add failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.WatchlistResponse{Items: items, Changed: changed}, http.StatusOK)
}

func (h *Handler) removeFromWatchlist(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	items, changed, err := h.services.WatchlistService.Remove(r.Context(), session.User, chi.URLParam(r, "symbol"))
	if err != nil {
		writeServiceError(w, r, err, "watchlist remove failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.WatchlistResponse{Items: items, Changed: changed}, http.StatusOK)
}
