// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/signup", h.signUp)
		r.Get("/api/plans", h.plans)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/session", h.session)
		r.Post("/api/auth/signout", h.signOut)
		r.Get("/api/entitlement", h.entitlement)

		r.Get("/api/assets", h.searchAssets)

		r.Get("/api/watchlist", h.getWatchlist)
		r.Post("/api/watchlist", h.addToWatchlist)
		r.Delete("/api/watchlist/{symbol}", h.removeFromWatchlist)

		r.Get("/api/market/{symbol}/prices", h.prices)
		r.Get("/api/market/{symbol}/sentiment", h.sentiment)
		r.Get("/api/market/{symbol}/distribution", h.distribution)
		r.Get("/api/convert", h.convert)

		r.Get("/api/settings", h.settings)
		r.Put("/api/settings/email-alerts", h.setEmailAlerts)
		r.Get("/api/apikey", h.getAPIKey)
		r.Post("/api/apikey", h.generateAPIKey)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
