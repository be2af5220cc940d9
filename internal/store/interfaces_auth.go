package store

//go:generate mockgen -source=interfaces_auth.go -destination=../mock/store_auth_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/ralona/nutritracker/models"
)

// UserRepository persists accounts of both roles, including pending
// invitations.
type UserRepository interface {
	// CreateUser inserts an active user, taking over an inactive row with the
	// same email if one exists. Returns ErrEmailAlreadyExists when the email
	// belongs to an active user.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpsertInvitedUser stores an inactive client carrying an invitation
	// token. An existing inactive row with the same email is re-issued.
	// Returns ErrEmailAlreadyExists when the email belongs to an active user.
	UpsertInvitedUser(ctx context.Context, user models.User) (models.User, error)

	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByInviteToken returns the inactive user holding token if it has
	// not expired at now. Otherwise ErrInvitationNotFound.
	FindUserByInviteToken(ctx context.Context, token string, now time.Time) (models.User, error)

	// ActivateUser consumes token in a single conditional statement: at most
	// one caller can succeed for a given token. Returns ErrInvitationNotFound
	// when the token is unknown, expired, or already consumed.
	ActivateUser(ctx context.Context, token string, passwordHash string, now time.Time) (models.User, error)

	ListClients(ctx context.Context, nutritionistID int64) ([]models.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, id string) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
