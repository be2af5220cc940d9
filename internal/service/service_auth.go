package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/crypto"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles self-registration, credential verification and the session
// lifecycle. Sessions are rows in the session store; the cookie only carries
// their identifier.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository persists issued sessions.
	sessionRepository store.SessionRepository

	// hasher derives and checks stored password credentials.
	hasher crypto.PasswordHasher

	// tokens generates session identifiers.
	tokens crypto.TokenGenerator

	validator validators.Validator

	// sessionTTL is the fixed lifetime of a session. It is never extended.
	sessionTTL time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	users store.UserRepository,
	sessions store.SessionRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenGenerator,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		hasher:            hasher,
		tokens:            tokens,
		validator:         validator,
		sessionTTL:        cfg.SessionTTL,
		now:               time.Now,
		logger:            logger,
	}
}

// normalizeEmail lower-cases and trims an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an active account and opens a session for it.
//
// A client may name its nutritionist; the referenced account must exist and
// be a nutritionist. An inactive account holding the same email (a pending
// invitation) is taken over. Returns ErrEmailAlreadyRegistered if an active
// account owns the email.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Session{}, err
	}

	if req.Role == models.RoleClient && req.NutritionistID != nil {
		if err := a.checkNutritionist(ctx, *req.NutritionistID); err != nil {
			return models.User{}, models.Session{}, err
		}
	}

	credential, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:          normalizeEmail(req.Email),
		Password:       credential,
		Name:           strings.TrimSpace(req.Name),
		Role:           req.Role,
		NutritionistID: req.NutritionistID,
		Active:         true,
	}
	if user.Role == models.RoleNutritionist {
		user.NutritionistID = nil
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, models.Session{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.openSession(ctx, created.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, session, nil
}

func (a *authService) checkNutritionist(ctx context.Context, id int64) error {
	owner, err := a.userRepository.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) || (err == nil && owner.Role != models.RoleNutritionist) {
		return &validators.ValidationError{Fields: []validators.FieldError{{
			Field:   validators.FieldNutritionistID,
			Message: "does not reference a nutritionist",
		}}}
	}
	if err != nil {
		return fmt.Errorf("nutritionist lookup failed: %w", err)
	}
	return nil
}

// dummyCredential is well formed, so verifying against it runs scrypt, but
// no password derives an all-zero key.
var dummyCredential = strings.Repeat("0", 128) + "." + strings.Repeat("0", 32)

// Login authenticates an active user by email and password.
//
// An unknown email, an inactive account and a wrong password all return
// ErrInvalidCredentials so the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Session{}, err
	}

	user, err := a.userRepository.FindActiveUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// same key derivation cost as a real account
			a.hasher.Verify(req.Password, dummyCredential)
			log.Info().Msg("login for unknown or inactive email")
			return models.User{}, models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.Password) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	return user, session, nil
}

// ResolveSession loads the session and re-reads its user. Expired sessions
// are deleted on sight.
func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.User{}, ErrUnauthenticated
	}

	session, err := a.sessionRepository.FindSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(a.now()) {
		if delErr := a.sessionRepository.DeleteSession(ctx, sessionID); delErr != nil && !errors.Is(delErr, store.ErrNotFound) {
			log.Warn().Err(delErr).Str("func", "authService.ResolveSession").Msg("failed to delete expired session")
		}
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}
	if !user.Active {
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}

// Logout deletes the session. Unknown sessions are not an error.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := a.sessionRepository.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func (a *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("purging expired sessions: %w", err)
	}
	return removed, nil
}

// openSession issues a session for userID expiring after sessionTTL.
func (a *authService) openSession(ctx context.Context, userID int64) (models.Session, error) {
	return newSession(ctx, a.sessionRepository, a.tokens, userID, a.now(), a.sessionTTL)
}

func newSession(
	ctx context.Context,
	sessions store.SessionRepository,
	tokens crypto.TokenGenerator,
	userID int64,
	now time.Time,
	ttl time.Duration,
) (models.Session, error) {
	id, err := tokens.Generate()
	if err != nil {
		return models.Session{}, fmt.Errorf("session id generation failed: %w", err)
	}

	session := models.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err = sessions.CreateSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}
