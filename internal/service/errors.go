package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidCredentials covers an unknown email, an inactive account and
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is returned for a missing, unknown or expired session.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrForbidden              = errors.New("access denied")
	ErrNotFound               = errors.New("not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvitationNotFound     = errors.New("invitation not found or expired")
	ErrIntegrationDisabled    = errors.New("health integration is not configured")
	ErrAlreadyExists          = errors.New("already exists")
)
