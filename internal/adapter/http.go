// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/utils"
	"github.com/MKhiriev/market-pulse/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignIn POSTs the credentials to /api/auth/signin. The bearer token of a
// successful response is kept for later requests.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.SessionResponse, error) {
	var session models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/auth/signin")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("sign in parse bearer token: %w", err)
	}

	h.SetToken(token)
	return session, nil
}

// SignOut ends the server session and forgets the token.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionResponse, error) {
	var out models.SessionResponse
	return out, h.get(ctx, "/api/session", nil, &out)
}

func (h *httpServerAdapter) Plans(ctx context.Context) ([]models.Plan, error) {
	var out []models.Plan
	return out, h.get(ctx, "/api/plans", nil, &out)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Assets(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error) {
	params := map[string]string{"q": query, "type": string(filter)}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var out []models.Asset
	return out, h.get(ctx, "/api/assets", params, &out)
}

func (h *httpServerAdapter) Watchlist(ctx context.Context) ([]models.Asset, error) {
	var out models.WatchlistResponse
	if err := h.get(ctx, "/api/watchlist", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (h *httpServerAdapter) AddToWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	var out models.WatchlistResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.WatchlistRequest{Symbol: symbol}).
		SetResult(&out).
		Post("/api/watchlist")
	if err != nil {
		return models.WatchlistResponse{}, fmt.Errorf("watchlist add request: %w", err)
	}
	return out, mapHTTPError(resp)
}

func (h *httpServerAdapter) RemoveFromWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	var out models.WatchlistResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&out).
		Delete("/api/watchlist/{symbol}")
	if err != nil {
		return models.WatchlistResponse{}, fmt.Errorf("watchlist remove request: %w", err)
	}
	return out, mapHTTPError(resp)
}

func (h *httpServerAdapter) Prices(ctx context.Context, symbol string, rangeDays int) ([]models.PricePoint, error) {
	var out []models.PricePoint
	return out, h.market(ctx, symbol, "prices", rangeParams(rangeDays, ""), &out)
}

func (h *httpServerAdapter) Sentiment(ctx context.Context, symbol string, source models.Source, rangeDays int) ([]models.SentimentPoint, error) {
	var out []models.SentimentPoint
	return out, h.market(ctx, symbol, "sentiment", rangeParams(rangeDays, source), &out)
}

func (h *httpServerAdapter) Distribution(ctx context.Context, symbol string, source models.Source) (models.DistributionView, error) {
	var out models.DistributionView
	return out, h.market(ctx, symbol, "distribution", rangeParams(0, source), &out)
}

func (h *httpServerAdapter) Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error) {
	params := map[string]string{
		"symbol":   symbol,
		"amount":   strconv.FormatFloat(amount, 'f', -1, 64),
		"currency": currency,
	}

	var out models.Conversion
	return out, h.get(ctx, "/api/convert", params, &out)
}

func (h *httpServerAdapter) Settings(ctx context.Context) (models.AccountOverview, error) {
	var out models.AccountOverview
	return out, h.get(ctx, "/api/settings", nil, &out)
}

func (h *httpServerAdapter) SetEmailAlerts(ctx context.Context, enabled bool) (models.Settings, error) {
	var out models.Settings

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailAlertsRequest{Enabled: enabled}).
		SetResult(&out).
		Put("/api/settings/email-alerts")
	if err != nil {
		return models.Settings{}, fmt.Errorf("email alerts request: %w", err)
	}
	return out, mapHTTPError(resp)
}

func (h *httpServerAdapter) APIKey(ctx context.Context) (models.APIKeyResponse, error) {
	var out models.APIKeyResponse
	return out, h.get(ctx, "/api/apikey", nil, &out)
}

func (h *httpServerAdapter) GenerateAPIKey(ctx context.Context) (models.APIKeyResponse, error) {
	var out models.APIKeyResponse

	resp, err := h.authedRequest(ctx).SetResult(&out).Post("/api/apikey")
	if err != nil {
		return models.APIKeyResponse{}, fmt.Errorf("api key request: %w", err)
	}
	return out, mapHTTPError(resp)
}

func (h *httpServerAdapter) market(ctx context.Context, symbol, kind string, params map[string]string, dst any) error {
	return h.get(ctx, "/api/market/"+url.PathEscape(symbol)+"/"+kind, params, dst)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, params map[string]string, dst any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(dst).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func rangeParams(rangeDays int, source models.Source) map[string]string {
	params := map[string]string{}
	if rangeDays > 0 {
		params["range"] = strconv.Itoa(rangeDays)
	}
	if source != "" {
		params["source"] = string(source)
	}
	return params
}
