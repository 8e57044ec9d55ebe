// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/market-pulse/models"
)

func TestRequestValidator_SignInRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SignInRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.SignInRequest{Email: "pro@example.com", Password: "pro123"}},
		{name: "padded email", req: models.SignInRequest{Email: "  pro@example.com ", Password: "pro123"}},
		{name: "empty email", req: models.SignInRequest{Email: "   ", Password: "pro123"}, wantErr: ErrEmptyEmail},
		{name: "no at sign", req: models.SignInRequest{Email: "pro.example.com", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "no local part", req: models.SignInRequest{Email: "@example.com", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "two at signs", req: models.SignInRequest{Email: "a@b@c", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "inner space", req: models.SignInRequest{Email: "p ro@example.com", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "empty password", req: models.SignInRequest{Email: "pro@example.com"}, wantErr: ErrEmptyPassword},
		{name: "long password", req: models.SignInRequest{Email: "pro@example.com", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
		{name: "email only", req: models.SignInRequest{Email: "pro@example.com"}, fields: []string{FieldEmail}},
		{name: "unknown field", req: models.SignInRequest{Email: "pro@example.com", Password: "x"}, fields: []string{FieldSymbol}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, v.Validate(ctx, &tt.req, tt.fields...), tt.wantErr, "pointer form")
		})
	}
}

func TestRequestValidator_WatchlistRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.WatchlistRequest{Symbol: "btc"}))
	assert.NoError(t, v.Validate(ctx, &models.WatchlistRequest{Symbol: "BRK.B"}))
	assert.ErrorIs(t, v.Validate(ctx, models.WatchlistRequest{Symbol: " "}), ErrEmptySymbol)
	assert.ErrorIs(t, v.Validate(ctx, models.WatchlistRequest{Symbol: strings.Repeat("X", 33)}), ErrSymbolTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.WatchlistRequest{Symbol: "BTC"}, FieldEmail), ErrUnknownField)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "not a request"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.EmailAlertsRequest{}), ErrUnsupportedType)
}
