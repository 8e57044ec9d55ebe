// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

// rangeParam reads ?range=. Absent means 0, which the service replaces with
// its default.
func rangeParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("range")
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ErrInvalidRange
	}
	return days, nil
}

func sourceParam(r *http.Request) (models.Source, error) {
	source, ok := models.ParseSource(r.URL.Query().Get("source"))
	if !ok {
		return "", service.ErrInvalidSource
	}
	return source, nil
}

func (h *Handler) prices(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	days, err := rangeParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid range")
		return
	}

	points, err := h.services.MarketService.Prices(r.Context(), session.User, chi.URLParam(r, "symbol"), days)
	if err != nil {
		writeServiceError(w, r, err, "price history failed")
		return
	}

	_, _ = utils.WriteJSON(w, points, http.StatusOK)
}

func (h *Handler) sentiment(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	days, err := rangeParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid range")
		return
	}
	source, err := sourceParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid source")
		return
	}

	points, err := h.services.MarketService.Sentiment(r.Context(), session.User, chi.URLParam(r, "symbol"), source, days)
	if err != nil {
		writeServiceError(w, r, err, "sentiment history failed")
		return
	}

	_, _ = utils.WriteJSON(w, points, http.StatusOK)
}

func (h *Handler) distribution(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, service.ErrTokenIsExpiredOrInvalid, "no session")
		return
	}

	source, err := sourceParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid source")
		return
	}

	view, err := h.services.MarketService.Distribution(r.Context(), session.User, chi.URLParam(r, "symbol"), source)
	if err != nil {
		writeServiceError(w, r, err, "distribution failed")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	amount, err := strconv.ParseFloat(strings.TrimSpace(query.Get("amount")), 64)
	if err != nil {
		writeServiceError(w, r, market.ErrInvalidAmount, "invalid amount")
		return
	}

	conversion, err := h.services.MarketService.Convert(r.Context(), query.Get("symbol"), amount, query.Get("currency"))
	if err != nil {
		writeServiceError(w, r, err, "conversion failed")
		return
	}

	_, _ = utils.WriteJSON(w, conversion, http.StatusOK)
}
