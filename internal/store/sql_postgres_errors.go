package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps a PostgreSQL integrity error to a store sentinel.
// uniqueErr is returned for unique_violation so each repository can name
// the key that collided. Errors that are not integrity violations are
// wrapped with fallback.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyError(err error, uniqueErr error, fallback error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return uniqueErr
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.RestrictViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
