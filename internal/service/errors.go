// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrNoAccountFound          = errors.New("no account found for this email")
	ErrIncorrectPassword       = errors.New("incorrect password")
	ErrSignUpNotImplemented    = errors.New("sign up is not implemented")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden wraps every entitlement denial; the guard's reason follows
	// the colon.
	ErrForbidden = errors.New("not available on your plan")

	ErrInvalidRange          = errors.New("invalid range")
	ErrInvalidSource         = errors.New("invalid sentiment source")
	ErrKeyGenerationFailed   = errors.New("api key generation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotSignedIn is returned by the client when no local session exists.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrTooManyRequests is the client's view of a 429 from the server or a
	// proxy in front of it.
	ErrTooManyRequests = errors.New("too many requests")
)
