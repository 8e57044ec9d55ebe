// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Tier is a subscription tier, the sole driver of entitlements.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// Tiers lists all known tiers from the most restrictive to the least.
var Tiers = []Tier{TierFree, TierPro, TierPremium}

// ParseTier normalises raw into a known [Tier]. The second result reports
// whether raw named a known tier; unknown values come back as [TierFree].
func ParseTier(raw string) (Tier, bool) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(raw))); t {
	case TierFree, TierPro, TierPremium:
		return t, true
	default:
		return TierFree, false
	}
}

// User represents a seeded demo account.
//
// Password holds the plaintext value only while the seed fixture is being
// loaded; the catalog replaces it with PasswordHash and clears it, so it is
// never serialised back to a client.
type User struct {
	// ID is the seeded account identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the display name shown in the UI.
	Name string `json:"name" yaml:"name"`

	// Email is the sign-in identifier and the storage partition key.
	Email string `json:"email" yaml:"email"`

	// Password is the plaintext fixture password (demo only).
	Password string `json:"-" yaml:"password"`

	// PasswordHash is the bcrypt hash computed at catalog load.
	PasswordHash []byte `json:"-" yaml:"-"`

	// Subscription is the user's tier.
	Subscription Tier `json:"subscription" yaml:"subscription"`
}

// Public returns a copy of u that is safe to hand out to clients.
func (u User) Public() User {
	return User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}

// SignInRequest carries the credentials of a sign-in form.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
