// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the server
// handlers and the client adapter.
//
// Handlers write these into response bodies; the adapter matches on them to
// turn a transport error back into a service error, so both sides must use
// the same wording.
package app

const (
	// MsgInvalidDataProvided is returned when a body or query cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoAccountFound is shown inline on sign-in for an unknown email.
	MsgNoAccountFound = "No account found for this email."

	// MsgIncorrectPassword is shown inline on sign-in for a wrong password.
	MsgIncorrectPassword = "Incorrect password."

	// MsgSignUpPlaceholder is the body of the non-functional sign-up route.
	MsgSignUpPlaceholder = "Sign Up is a placeholder in this demo."

	MsgTokenIsExpiredOrInvalid = "session is expired or invalid"

	// MsgNotAvailableOnPlan prefixes an entitlement denial reason.
	MsgNotAvailableOnPlan = "not available on your plan"

	MsgAssetNotFound = "asset not found"

	MsgInvalidSymbol = "invalid symbol"

	MsgInvalidAmount = "amount must be a non-negative number"

	MsgInvalidRange = "range must be 7 or 30"

	MsgInvalidSource = "unknown sentiment source"

	MsgKeyGenerationFailed = "could not generate API key"

	MsgInternalServerError = "internal server error"
)
