// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, free-text sanitising
// and trace identifier generation.
package utils

import (
	"context"

	"github.com/ralona/nutritracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// ActorCtxKey is the key under which the session middleware stores the
// authenticated [models.Actor].
var ActorCtxKey = contextKey("actor")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithActor returns a copy of ctx carrying actor and its user ID.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	ctx = context.WithValue(ctx, ActorCtxKey, actor)
	return context.WithValue(ctx, UserIDCtxKey, actor.ActorID())
}

// GetActorFromContext retrieves the authenticated actor stored by WithActor.
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.Actor)
	return actor, ok && actor != nil
}

// CurrentUserCtxKey is the key under which the session middleware stores the
// authenticated [models.User].
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user together with the
// actor derived from it.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, CurrentUserCtxKey, user)
	return WithActor(ctx, user.Actor())
}

// GetCurrentUserFromContext retrieves the user stored by WithCurrentUser.
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
