package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared connection pool. It is constructed once in main and
// passed to every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool, pings it and, when migrate is
// true, applies the embedded schema.
func NewConnectPostgres(ctx context.Context, cfg config.DB, migrate bool, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	if migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
			conn.Close()
			return nil, err
		}
		log.Info().Str("func", "NewConnectPostgres").Msg("migrations applied")
	}

	return db, nil
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execOne runs a DML statement expected to touch exactly one row and
// reports [ErrNotFound] when it touched none.
func (db *DB) execOne(ctx context.Context, funcName string, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return classifyError(err, ErrAlreadyExists, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// queryOne runs a single-row query and hands the row to scan. No row maps
// to [ErrNotFound].
func queryOne(ctx context.Context, db *DB, funcName string, scan func(rowScanner) error, query string, args ...any) error {
	log := logger.FromContext(ctx)

	if err := scan(db.QueryRowContext(ctx, query, args...)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to query row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// queryList runs a multi-row query and scans every row with scan.
func queryList[T any](ctx context.Context, db *DB, funcName string, scan func(rowScanner, *T) error, query string, args ...any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if scanErr := scan(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
