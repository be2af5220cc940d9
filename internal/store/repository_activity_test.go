package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/ralona/nutritracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	activityColumnNames     = []string{"id", "user_id", "date", "steps", "source", "updated_at"}
	exerciseTypeColumnNames = []string{"id", "name", "calories_per_minute"}
	exerciseColumnNames     = []string{"id", "user_id", "exercise_type_id", "date", "duration", "calories", "notes", "created_at"}
)

func newTestActivityRepo(t *testing.T) (ActivityRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewActivityRepository(db, db.logger), mock
}

// ─────────────────────────────────────────────
// Physical activity
// ─────────────────────────────────────────────

func TestUpsertActivity_Manual(t *testing.T) {
	repo, mock := newTestActivityRepo(t)
	day := mustDate(t, "2026-03-10")

	mock.ExpectQuery("INSERT INTO physical_activities").
		WithArgs(int64(7), "2026-03-10", 8000, "manual").
		WillReturnRows(sqlmock.NewRows(activityColumnNames).AddRow(1, 7, day.Time, 8000, "manual", testNow))

	saved, err := repo.UpsertActivity(testContext(), models.PhysicalActivity{
		UserID: 7, Date: day, Steps: 8000, Source: models.SourceManual,
	})
	require.NoError(t, err)
	assert.Equal(t, 8000, saved.Steps)
	assert.Equal(t, models.SourceManual, saved.Source)
}

// TestUpsertActivity_ManualKept verifies that an integration count does not
// replace a manual one.
func TestUpsertActivity_ManualKept(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("INSERT INTO physical_activities").
		WillReturnRows(sqlmock.NewRows(activityColumnNames))

	_, err := repo.UpsertActivity(testContext(), models.PhysicalActivity{
		UserID: 7, Date: mustDate(t, "2026-03-10"), Steps: 100, Source: models.SourceIntegration,
	})
	require.ErrorIs(t, err, ErrNotModified)
}

func TestListActivities(t *testing.T) {
	repo, mock := newTestActivityRepo(t)
	from := mustDate(t, "2026-03-01")

	mock.ExpectQuery("SELECT (.+) FROM physical_activities WHERE user_id = (.+) AND date >= (.+) ORDER BY date DESC").
		WithArgs(int64(7), "2026-03-01").
		WillReturnRows(sqlmock.NewRows(activityColumnNames).
			AddRow(2, 7, testNow, 9000, "integration", testNow).
			AddRow(1, 7, from.Time, 4000, "manual", testNow))

	list, err := repo.ListActivities(testContext(), models.ActivityFilter{UserID: 7, From: &from})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.SourceIntegration, list[0].Source)
}

// ─────────────────────────────────────────────
// Exercise types
// ─────────────────────────────────────────────

func TestCreateExerciseType_Duplicate(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("INSERT INTO exercise_types").
		WithArgs("Correr", 10.5).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateExerciseType(testContext(), models.ExerciseType{Name: "Correr", CaloriesPerMinute: 10.5})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestListExerciseTypes(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM exercise_types ORDER BY name").
		WillReturnRows(sqlmock.NewRows(exerciseTypeColumnNames).
			AddRow(1, "Correr", 10.5).
			AddRow(2, "Nadar", 8.0))

	types, err := repo.ListExerciseTypes(testContext())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Nadar", types[1].Name)
}

func TestGetExerciseType_NotFound(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM exercise_types WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(exerciseTypeColumnNames))

	_, err := repo.GetExerciseType(testContext(), 3)
	require.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// Exercise entries
// ─────────────────────────────────────────────

func TestCreateExercise(t *testing.T) {
	repo, mock := newTestActivityRepo(t)
	day := mustDate(t, "2026-03-10")

	mock.ExpectQuery("INSERT INTO exercise_entries").
		WithArgs(int64(7), int64(1), "2026-03-10", 30, 315.0, "").
		WillReturnRows(sqlmock.NewRows(exerciseColumnNames).AddRow(5, 7, 1, day.Time, 30, 315.0, "", testNow))

	entry, err := repo.CreateExercise(testContext(), models.ExerciseEntry{
		UserID: 7, ExerciseTypeID: 1, Date: day, Duration: 30, Calories: ptr(315.0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.ID)
	require.NotNil(t, entry.Calories)
	assert.InDelta(t, 315.0, *entry.Calories, 0.001)
}

func TestCreateExercise_UnknownType(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("INSERT INTO exercise_entries").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateExercise(testContext(), models.ExerciseEntry{UserID: 7, ExerciseTypeID: 99})
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestListExercises_NoRange(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM exercise_entries WHERE user_id = (.+) ORDER BY date DESC").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(exerciseColumnNames))

	list, err := repo.ListExercises(testContext(), models.ActivityFilter{UserID: 7})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteExercise(t *testing.T) {
	repo, mock := newTestActivityRepo(t)

	mock.ExpectExec("DELETE FROM exercise_entries").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteExercise(testContext(), 5))
}
