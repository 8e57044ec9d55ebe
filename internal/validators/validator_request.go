// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/market-pulse/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldSymbol   = "symbol"
)

const (
	maxEmailLen = 254

	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72

	maxSymbolLen = 32
)

// RequestValidator validates the JSON bodies accepted by the HTTP API.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignInRequest:
		return v.validateSignInRequest(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignInRequest(ctx, *value, fields...)

	case models.WatchlistRequest:
		return v.validateWatchlistRequest(ctx, value, fields...)
	case *models.WatchlistRequest:
		return v.validateWatchlistRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignInRequest(_ context.Context, req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) > maxPasswordLen {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateWatchlistRequest(_ context.Context, req models.WatchlistRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSymbol}
	}

	for _, f := range fields {
		switch f {
		case FieldSymbol:
			symbol := strings.TrimSpace(req.Symbol)
			if symbol == "" {
				return ErrEmptySymbol
			}
			if len(symbol) > maxSymbolLen {
				return ErrSymbolTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail only checks the shape; whether an account exists is the
// auth service's call.
func validateEmail(raw string) error {
	email := strings.TrimSpace(raw)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLen || strings.ContainsAny(email, " \t\r\n") {
		return ErrInvalidEmail
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return ErrInvalidEmail
	}
	return nil
}
