// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/handler"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
)

type mockPinger struct {
	ping func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.ping(ctx)
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func healthStatus(t *testing.T, addr string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewServer_NothingEnabled(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCListenFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.Server{GRPCAddress: lis.Addr().String()}
	_, err = NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())

	assert.Error(t, err)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(), errNoServersToRun)
}

func TestMarkReady_FlipsHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantReady  bool
		wantStatus healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "storage answers", wantReady: true, wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "storage down", pingErr: assert.AnError, wantStatus: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
			pinger := &mockPinger{ping: func(context.Context) error { return tt.pingErr }}

			srv, err := NewServer(newTestHandlers(t, cfg), pinger, cfg, logger.Nop())
			require.NoError(t, err)
			s := srv.(*server)

			go s.gRPCServer.RunServer()
			defer s.Shutdown()

			assert.Equal(t, tt.wantReady, s.markReady(context.Background()))
			assert.Equal(t, tt.wantStatus, healthStatus(t, s.gRPCServer.gRPCNetListener.Addr().String()))
		})
	}
}

func TestNewHTTPServer_AppliesConfig(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline)
		w.WriteHeader(http.StatusNoContent)
	})

	s := newHTTPServer(router, config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second}, logger.Nop())

	assert.Equal(t, ":8080", s.server.Addr)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.NotPanics(t, s.Shutdown)
}
