// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session JWT.
//
// The "jti" claim carries the server-side session identifier and the "sub"
// claim the user's email. SignedString is the compact JWS form sent in the
// Authorization header.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

// SessionID returns the session identifier stored in the "jti" claim.
func (t *Token) SessionID() (string, error) {
	if t.ID == "" {
		return "", errors.New("token has no session id")
	}
	return t.ID, nil
}

// Email returns the user email stored in the "sub" claim.
func (t *Token) Email() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
