// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// testAPI is a router over real services backed by an in-memory KV.
type testAPI struct {
	router   *chi.Mux
	storages *store.Storages
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	c, err := catalog.LoadWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	storages := store.NewStoragesWithKV(store.NewMemoryKV(), logger.Nop())
	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:  "handler-test-key",
		TokenIssuer:   "market-pulse-test",
		TokenDuration: time.Hour,
		Version:       "9.9.9",
	}}

	services, err := service.NewServices(storages, c, market.NewProvider(nil, time.Second, logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	return testAPI{router: NewHandler(services, logger.Nop()).Init(), storages: storages}
}

func (a testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// signIn signs in a demo account and returns its bearer token.
func (a testAPI) signIn(t *testing.T, email, password string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/auth/signin", "", models.SignInRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	header := rec.Header().Get("Authorization")
	require.NotEmpty(t, header)
	return header[len("Bearer "):]
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rec)["error"]
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestInit_RegistersRoutes(t *testing.T) {
	api := newTestAPI(t)

	public := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/plans"},
		{http.MethodGet, "/api/version"},
	}
	for _, rc := range public {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := api.do(t, rc.method, rc.path, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/session"},
		{http.MethodPost, "/api/auth/signout"},
		{http.MethodGet, "/api/entitlement"},
		{http.MethodGet, "/api/assets"},
		{http.MethodGet, "/api/watchlist"},
		{http.MethodPost, "/api/watchlist"},
		{http.MethodDelete, "/api/watchlist/BTC"},
		{http.MethodGet, "/api/market/BTC/prices"},
		{http.MethodGet, "/api/market/BTC/sentiment"},
		{http.MethodGet, "/api/market/BTC/distribution"},
		{http.MethodGet, "/api/convert"},
		{http.MethodGet, "/api/settings"},
		{http.MethodPut, "/api/settings/email-alerts"},
		{http.MethodGet, "/api/apikey"},
		{http.MethodPost, "/api/apikey"},
	}
	for _, rc := range protected {
		t.Run(rc.method+" "+rc.path+" requires auth", func(t *testing.T) {
			rec := api.do(t, rc.method, rc.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteIs404(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/does-not-exist", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodOnKnownPathIs404(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodDelete, "/api/plans", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}
