// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nutritracker server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies under the "error" key. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON body"

	MsgInvalidGzipBody = "invalid gzip body"

	// MsgValidationFailed accompanies the list of rejected fields.
	MsgValidationFailed = "validation failed"

	// MsgUnauthorized is returned for a missing, forged or expired session.
	MsgUnauthorized = "unauthorized"

	// MsgInvalidCredentials is returned by login for an unknown email, an
	// inactive account and a wrong password alike.
	MsgInvalidCredentials = "invalid email or password"

	// MsgAccessDenied is returned when the actor may not touch a record or
	// does not have the required role.
	MsgAccessDenied = "access denied"

	MsgNotFound = "not found"

	// MsgEmailAlreadyRegistered is returned when an active account already
	// owns the email.
	MsgEmailAlreadyRegistered = "email already registered"

	MsgAlreadyExists = "already exists"

	// MsgIntegrationDisabled is returned by sync when no health provider is
	// configured.
	MsgIntegrationDisabled = "health integration is not configured"

	// MsgProviderUnavailable is returned when the health provider rejects or
	// fails a sync.
	MsgProviderUnavailable = "health provider unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is written when a request exceeds the server timeout.
	MsgRequestTimeout = "request timed out"
)
