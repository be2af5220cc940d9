package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user row cannot be written
	// because an active account already owns the email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNotFound is returned when a lookup by identifier matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvitationNotFound is returned when an invitation token is unknown,
	// expired, or already consumed.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrReferenceNotFound is returned when a row references another row
	// (user, meal, exercise type) that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrConstraintViolation is returned when a write breaks a CHECK or
	// NOT NULL constraint of the schema.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrAlreadyExists is returned when a write collides with a unique key
	// other than the user email.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotModified is returned by conditional upserts that left the
	// existing row untouched.
	ErrNotModified = errors.New("record not modified")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
