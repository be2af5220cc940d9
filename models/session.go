package models

import "time"

// Session binds an opaque identifier stored in a signed cookie to a user.
// Expiry is fixed at issuance and never extended.
type Session struct {
	ID        string    `json:"-"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
