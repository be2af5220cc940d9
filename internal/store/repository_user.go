package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, invitation and lookup against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.Role,
		&user.NutritionistID,
		&user.Active,
		&user.InviteToken,
		&user.InviteExpires,
		&user.CreatedAt,
	)
}

// CreateUser persists an active user and returns it with server-assigned
// fields populated.
//
// The statement upserts on email but only overwrites an inactive row, so an
// empty result means the email belongs to an active account.
//
// Error handling:
//   - no row returned → [ErrEmailAlreadyExists].
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferenceNotFound].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Password, user.Name, user.Role, user.NutritionistID)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email belongs to an active user")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, classifyError(err, ErrEmailAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

// UpsertInvitedUser stores an inactive client with a pending invitation.
// Same conflict rules as [userRepository.CreateUser].
func (r *userRepository) UpsertInvitedUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertInvitedUser,
		user.Email, user.Password, user.Name, user.NutritionistID, user.InviteToken, user.InviteExpires)

	var invited models.User
	if err := scanUser(row, &invited); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.UpsertInvitedUser").Msg("email belongs to an active user")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpsertInvitedUser").Msg("error upserting invited user")
		return models.User{}, classifyError(err, ErrEmailAlreadyExists, ErrExecutingQuery)
	}

	return invited, nil
}

// FindActiveUserByEmail returns the active user owning email, or
// [ErrNotFound].
func (r *userRepository) FindActiveUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindActiveUserByEmail", ErrNotFound, findActiveUserByEmail, email)
}

// FindUserByID returns the user with the given id, or [ErrNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", ErrNotFound, findUserByID, id)
}

// FindUserByInviteToken returns the inactive user holding a token that is
// still valid at now, or [ErrInvitationNotFound].
func (r *userRepository) FindUserByInviteToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByInviteToken", ErrInvitationNotFound, findUserByInviteToken, token, now)
}

// ActivateUser sets the password, marks the user active and clears the
// token in one UPDATE guarded by the token, its expiry and the inactive
// flag. Concurrent calls with the same token serialise on the row lock and
// only the first sees a matching row.
func (r *userRepository) ActivateUser(ctx context.Context, token string, passwordHash string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "*userRepository.ActivateUser", ErrInvitationNotFound, activateUser, passwordHash, token, now)
}

// ListClients returns every client supervised by nutritionistID, ordered by
// name.
func (r *userRepository) ListClients(ctx context.Context, nutritionistID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listClients, nutritionistID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListClients").
			Int64("nutritionist_id", nutritionistID).
			Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.User, 0)
	for rows.Next() {
		var client models.User
		if scanErr := scanUser(rows, &client); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.ListClients").
				Int64("nutritionist_id", nutritionistID).
				Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		clients = append(clients, client)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.ListClients").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, notFound error, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, args...), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", funcName).Msg("user not found")
			return models.User{}, notFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
