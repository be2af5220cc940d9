package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/crypto"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

// invitationService issues single-use activation links for new clients.
type invitationService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	hasher    crypto.PasswordHasher
	tokens    crypto.TokenGenerator
	validator validators.Validator
	cache     *cache.Client

	// invitationTTL is how long a link stays redeemable.
	invitationTTL time.Duration
	sessionTTL    time.Duration

	// publicURL prefixes invitation links.
	publicURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewInvitationService builds the invitation lifecycle service. Links point
// at cfg.PublicURL and expire after cfg.InvitationTTL.
func NewInvitationService(
	users store.UserRepository,
	sessions store.SessionRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenGenerator,
	validator validators.Validator,
	cache *cache.Client,
	cfg config.App,
	logger *logger.Logger,
) InvitationService {
	return &invitationService{
		userRepository:    users,
		sessionRepository: sessions,
		hasher:            hasher,
		tokens:            tokens,
		validator:         validator,
		cache:             cache,
		invitationTTL:     cfg.InvitationTTL,
		sessionTTL:        cfg.SessionTTL,
		publicURL:         strings.TrimRight(cfg.PublicURL, "/"),
		now:               time.Now,
		logger:            logger,
	}
}

// Create invites a client on behalf of a nutritionist.
//
// The pending user gets a placeholder credential derived from random bytes
// nobody knows, so it can never be used to log in. A pending invitation for
// the same email is re-issued with a fresh token; an active account makes the
// call fail with ErrEmailAlreadyRegistered.
func (s *invitationService) Create(ctx context.Context, actor models.Actor, req models.InvitationRequest) (models.Invitation, error) {
	log := logger.FromContext(ctx)

	nutritionist, ok := actor.(models.NutritionistActor)
	if !ok {
		return models.Invitation{}, ErrForbidden
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Invitation{}, err
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return models.Invitation{}, fmt.Errorf("invitation token generation failed: %w", err)
	}

	secret, err := s.tokens.Generate()
	if err != nil {
		return models.Invitation{}, fmt.Errorf("placeholder secret generation failed: %w", err)
	}
	placeholder, err := s.hasher.Hash(secret)
	if err != nil {
		return models.Invitation{}, fmt.Errorf("placeholder hashing failed: %w", err)
	}

	expires := s.now().Add(s.invitationTTL)
	nutritionistID := nutritionist.ID

	invited, err := s.userRepository.UpsertInvitedUser(ctx, models.User{
		Email:          normalizeEmail(req.Email),
		Password:       placeholder,
		Name:           strings.TrimSpace(req.Name),
		Role:           models.RoleClient,
		NutritionistID: &nutritionistID,
		Active:         false,
		InviteToken:    &token,
		InviteExpires:  &expires,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Invitation{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "invitationService.Create").Int64("nutritionist_id", nutritionist.ID).Msg("invitation upsert failed")
		return models.Invitation{}, fmt.Errorf("invitation upsert failed: %w", err)
	}

	log.Info().
		Int64("nutritionist_id", nutritionist.ID).
		Int64("user_id", invited.ID).
		Time("expires_at", expires).
		Msg("invitation issued")
	invalidateSummaries(ctx, s.cache, &nutritionistID)

	return models.Invitation{
		User:       invited,
		Token:      token,
		InviteLink: s.publicURL + "/invitations/" + token,
		ExpiresAt:  expires,
	}, nil
}

// Verify returns the pending user of token without changing anything.
func (s *invitationService) Verify(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvitationNotFound
	}

	user, err := s.userRepository.FindUserByInviteToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, store.ErrInvitationNotFound) {
			return models.User{}, ErrInvitationNotFound
		}
		return models.User{}, fmt.Errorf("invitation lookup failed: %w", err)
	}

	return user, nil
}

// Activate redeems token. Expiry is checked again inside the conditional
// update, so a link validated just before expiring still fails afterwards,
// and of two concurrent calls at most one succeeds.
func (s *invitationService) Activate(ctx context.Context, token string, req models.ActivationRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Session{}, err
	}
	if token == "" {
		return models.User{}, models.Session{}, ErrInvitationNotFound
	}

	credential, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := s.now()
	user, err := s.userRepository.ActivateUser(ctx, token, credential, now)
	if err != nil {
		if errors.Is(err, store.ErrInvitationNotFound) {
			log.Info().Msg("activation with unknown, expired or consumed token")
			return models.User{}, models.Session{}, ErrInvitationNotFound
		}
		log.Err(err).Str("func", "invitationService.Activate").Msg("activation failed")
		return models.User{}, models.Session{}, fmt.Errorf("activation failed: %w", err)
	}

	session, err := newSession(ctx, s.sessionRepository, s.tokens, user.ID, now, s.sessionTTL)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("invitation redeemed")
	invalidateSummaries(ctx, s.cache, user.NutritionistID)
	return user, session, nil
}
