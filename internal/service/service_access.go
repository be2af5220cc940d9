package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/models"
)

// accessGate is the single ownership check used by every record-level
// operation. The owner is read from the database on every call.
type accessGate struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAccessGate returns the ownership check used by every record service.
func NewAccessGate(users store.UserRepository, logger *logger.Logger) AccessGate {
	return &accessGate{userRepository: users, logger: logger}
}

// Authorize implements [AccessGate]. An unknown owner is reported as
// ErrForbidden so callers cannot probe which user ids exist.
func (g *accessGate) Authorize(ctx context.Context, actor models.Actor, ownerID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if actor == nil {
		return models.User{}, ErrUnauthenticated
	}

	owner, err := g.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrForbidden
		}
		return models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	switch a := actor.(type) {
	case models.ClientActor:
		if owner.ID == a.ID {
			return owner, nil
		}
	case models.NutritionistActor:
		if owner.Role == models.RoleClient && owner.SupervisedBy(a.ID) {
			return owner, nil
		}
	}

	log.Warn().
		Int64("actor_id", actor.ActorID()).
		Str("actor_role", string(actor.ActorRole())).
		Int64("owner_id", ownerID).
		Msg("access denied")
	return models.User{}, ErrForbidden
}

// ownerOrSelf resolves the user a listing refers to: userID when given,
// otherwise the actor itself.
func ownerOrSelf(actor models.Actor, userID int64) int64 {
	if userID == 0 {
		return actor.ActorID()
	}
	return userID
}
