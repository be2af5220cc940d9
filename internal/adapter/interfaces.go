// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for external systems the server talks to.
//
// The primary abstraction is [HealthProvider], which reads daily step counts
// from a third-party health service on behalf of a connected client. The
// package ships an HTTP/REST implementation ([NewHTTPHealthProvider]) that
// refreshes OAuth2 tokens transparently.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ralona/nutritracker/models"
	"golang.org/x/oauth2"
)

// HealthProvider fetches activity data of one connected account.
type HealthProvider interface {
	// DailySteps returns the step count of date. An expired token is
	// refreshed first; the returned token is the one actually used, so the
	// caller can persist refreshed credentials.
	DailySteps(ctx context.Context, token *oauth2.Token, date models.Date) (models.StepCount, *oauth2.Token, error)
}
