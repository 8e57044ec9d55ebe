// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

// searchAssets answers GET /api/assets?q=&type=&limit=. A missing or
// unparsable limit falls back to the service default.
func (h *Handler) searchAssets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	filter := models.ParseTypeFilter(query.Get("type"))

	assets := h.services.AssetService.Search(r.Context(), query.Get("q"), filter, limit)
	_, _ = utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AssetService.Plans(r.Context()), http.StatusOK)
}
