package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// arrayConverter lets []int64 arguments (bound to "= ANY($n)") through to
// sqlmock the way pgx does; everything else uses the default conversion.
type arrayConverter struct{}

func (arrayConverter) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]int64); ok {
		return ids, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(arrayConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return newDBFromSQL(db), mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T {
	return &v
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var userColumnNames = []string{
	"id", "email", "password", "name", "role", "nutritionist_id",
	"active", "invite_token", "invite_expires", "created_at",
}

var mealColumnNames = []string{
	"id", "user_id", "meal_date", "meal_time", "meal_type", "name", "description",
	"calories", "duration", "water_intake", "notes", "created_at", "updated_at",
}

func mealRow(id, userID int64, date time.Time, clock any, mealType models.MealType, name string) []driver.Value {
	return []driver.Value{
		id, userID, date, clock, string(mealType), name, "",
		nil, nil, nil, "", testNow, testNow,
	}
}
