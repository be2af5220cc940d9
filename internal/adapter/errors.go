package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("provider rejected credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited by provider")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("provider internal error")

	ErrTokenRefresh    = errors.New("token refresh failed")
	ErrInvalidResponse = errors.New("invalid provider response")
)
