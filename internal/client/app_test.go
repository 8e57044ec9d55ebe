// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/logger"
)

type mockUI struct {
	run func(ctx context.Context) error
}

func (m *mockUI) Run(ctx context.Context) error {
	return m.run(ctx)
}

type mockCloser struct {
	closed int
	err    error
}

func (m *mockCloser) Close() error {
	m.closed++
	return m.err
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)

	app, err := NewApp(&mockUI{}, nil, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)

	var _ Client = app
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name     string
		uiErr    error
		closeErr error
		wantErr  error
	}{
		{name: "clean quit"},
		{name: "ui failure", uiErr: boom, wantErr: boom},
		{name: "close failure is only logged", closeErr: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer := &mockCloser{err: tt.closeErr}
			var gotCtx context.Context
			ui := &mockUI{run: func(ctx context.Context) error {
				gotCtx = ctx
				return tt.uiErr
			}}

			app, err := NewApp(ui, closer, logger.Nop())
			require.NoError(t, err)

			err = app.Run()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NotNil(t, gotCtx)
			assert.Equal(t, 1, closer.closed)
		})
	}
}

func TestApp_RunWithoutLocalStore(t *testing.T) {
	app, err := NewApp(&mockUI{run: func(context.Context) error { return nil }}, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.run(context.Background()))
}
