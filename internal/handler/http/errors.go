// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading the session cookie and request
// parameters. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidSessionCookie is returned when the cookie signature does not
	// verify or the value cannot be decoded.
	ErrInvalidSessionCookie = errors.New("invalid session cookie")

	// ErrNoActor is returned by handlers that run behind the session
	// middleware but find no actor in the request context.
	ErrNoActor = errors.New("no authenticated actor in context")

	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")
)
