// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/service"
)

const (
	msgServerUnavailable = "Network unavailable or server unreachable"
	msgSessionExpired    = "Your session has expired. Please sign in again."
	msgCredentials       = "Enter a valid email and password"
	msgTooManyRequests   = "Too many requests. Try again in a moment."
)

// isAuthError reports whether err means the bearer token is no longer
// accepted and the user has to sign in again.
func isAuthError(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) || errors.Is(err, service.ErrNotSignedIn)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrTooManyRequests):
		return msgTooManyRequests
	case errors.Is(err, service.ErrForbidden):
		return strings.TrimPrefix(err.Error(), service.ErrForbidden.Error()+": ")
	case errors.Is(err, catalog.ErrAssetNotFound):
		return "Asset not found"
	case errors.Is(err, service.ErrInvalidRange):
		return app.MsgInvalidRange
	case errors.Is(err, service.ErrInvalidSource):
		return app.MsgInvalidSource
	case errors.Is(err, service.ErrKeyGenerationFailed):
		return app.MsgKeyGenerationFailed
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// signInErrorMessage returns the inline text shown under the sign-in form.
func signInErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNoAccountFound):
		return app.MsgNoAccountFound
	case errors.Is(err, service.ErrIncorrectPassword):
		return app.MsgIncorrectPassword
	case errors.Is(err, service.ErrInvalidDataProvided):
		return msgCredentials
	}
	return humanizeError(err)
}
