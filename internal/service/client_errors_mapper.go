// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/catalog"
)

// MapAdapterError translates the adapter's transport error into a service
// business error so the views can switch on it.
func MapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidRange:
			return ErrInvalidRange
		case app.MsgInvalidSource:
			return ErrInvalidSource
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgNoAccountFound:
			return ErrNoAccountFound
		case app.MsgIncorrectPassword:
			return ErrIncorrectPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		reason := strings.TrimPrefix(strings.TrimPrefix(msg, ErrForbidden.Error()), ": ")
		if reason == "" {
			return ErrForbidden
		}
		return fmt.Errorf("%w: %s", ErrForbidden, reason)

	case errors.Is(err, adapter.ErrNotFound):
		return catalog.ErrAssetNotFound

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests

	case errors.Is(err, adapter.ErrNotImplemented):
		return ErrSignUpNotImplemented

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgKeyGenerationFailed {
			return ErrKeyGenerationFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
