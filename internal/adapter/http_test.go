// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "padded", raw: "  http://127.0.0.1:3000  ", want: "http://127.0.0.1:3000"},
		{name: "empty", raw: " ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK, body: `[]`},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"range must be 7 or 30"}`, wantErr: ErrBadRequest, wantMsg: "bad request: range must be 7 or 30"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"session is expired or invalid"}`, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"not available on your plan: x"}`, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: `404 page not found`, wantErr: ErrNotFound},
		{name: "too many", status: http.StatusTooManyRequests, body: `{}`, wantErr: ErrTooManyRequests},
		{name: "not implemented", status: http.StatusNotImplemented, wantErr: ErrNotImplemented},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "other", status: http.StatusBadGateway, wantMsg: "http 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := a.Plans(context.Background())

			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestSignIn_StoresBearerToken(t *testing.T) {
	var sawToken string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/signin":
			var req models.SignInRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "pro@example.com", req.Email)
			w.Header().Set("Authorization", "Bearer tok-123")
			writeJSON(w, http.StatusOK, models.SessionResponse{User: models.User{Email: req.Email}})
		case "/api/session":
			sawToken = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, models.SessionResponse{})
		}
	})

	resp, err := a.SignIn(context.Background(), models.SignInRequest{Email: "pro@example.com", Password: "pro123"})
	require.NoError(t, err)
	assert.Equal(t, "pro@example.com", resp.User.Email)
	assert.Equal(t, "tok-123", a.Token())

	_, err = a.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", sawToken)
}

func TestSignIn_MissingBearer(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.SessionResponse{})
	})

	_, err := a.SignIn(context.Background(), models.SignInRequest{})

	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestSignOut_ForgetsTokenEvenOnError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	a.SetToken("tok")

	err := a.SignOut(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, a.Token())
}

func TestRequests_PathsAndParams(t *testing.T) {
	type seen struct {
		method string
		path   string
		query  string
	}
	var got seen

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		got = seen{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		switch r.URL.Path {
		case "/api/version":
			_, _ = w.Write([]byte("1.0.0\n"))
		case "/api/watchlist", "/api/watchlist/BTC":
			writeJSON(w, http.StatusOK, models.WatchlistResponse{Items: []models.Asset{{Symbol: "BTC"}}, Changed: true})
		case "/api/assets", "/api/market/ETH/sentiment", "/api/market/BTC/prices":
			writeJSON(w, http.StatusOK, []any{})
		default:
			writeJSON(w, http.StatusOK, map[string]any{})
		}
	})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want seen
	}{
		{
			name: "version",
			call: func() error {
				v, err := a.Version(ctx)
				assert.Equal(t, "1.0.0", v)
				return err
			},
			want: seen{method: http.MethodGet, path: "/api/version"},
		},
		{
			name: "assets",
			call: func() error { _, err := a.Assets(ctx, "bit", models.FilterCrypto, 10); return err },
			want: seen{method: http.MethodGet, path: "/api/assets", query: "limit=10&q=bit&type=crypto"},
		},
		{
			name: "watchlist unwraps items",
			call: func() error {
				items, err := a.Watchlist(ctx)
				assert.Len(t, items, 1)
				return err
			},
			want: seen{method: http.MethodGet, path: "/api/watchlist"},
		},
		{
			name: "watchlist remove",
			call: func() error {
				resp, err := a.RemoveFromWatchlist(ctx, "BTC")
				assert.True(t, resp.Changed)
				return err
			},
			want: seen{method: http.MethodDelete, path: "/api/watchlist/BTC"},
		},
		{
			name: "sentiment",
			call: func() error { _, err := a.Sentiment(ctx, "ETH", models.SourceReddit, 30); return err },
			want: seen{method: http.MethodGet, path: "/api/market/ETH/sentiment", query: "range=30&source=reddit"},
		},
		{
			name: "prices default range",
			call: func() error { _, err := a.Prices(ctx, "BTC", 0); return err },
			want: seen{method: http.MethodGet, path: "/api/market/BTC/prices"},
		},
		{
			name: "convert",
			call: func() error { _, err := a.Convert(ctx, "BTC", 1.5, "PHP"); return err },
			want: seen{method: http.MethodGet, path: "/api/convert", query: "amount=1.5&currency=PHP&symbol=BTC"},
		},
		{
			name: "email alerts",
			call: func() error { _, err := a.SetEmailAlerts(ctx, true); return err },
			want: seen{method: http.MethodPut, path: "/api/settings/email-alerts"},
		},
		{
			name: "generate api key",
			call: func() error { _, err := a.GenerateAPIKey(ctx); return err },
			want: seen{method: http.MethodPost, path: "/api/apikey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.want, got)
		})
	}
}
