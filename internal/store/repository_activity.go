package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository] over "physical_activities", "exercise_types" and
// "exercise_entries".
type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository].
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

func scanActivity(row rowScanner, a *models.PhysicalActivity) error {
	return row.Scan(&a.ID, &a.UserID, &a.Date, &a.Steps, &a.Source, &a.UpdatedAt)
}

func scanExerciseType(row rowScanner, t *models.ExerciseType) error {
	return row.Scan(&t.ID, &t.Name, &t.CaloriesPerMinute)
}

func scanExercise(row rowScanner, e *models.ExerciseEntry) error {
	return row.Scan(&e.ID, &e.UserID, &e.ExerciseTypeID, &e.Date, &e.Duration, &e.Calories, &e.Notes, &e.CreatedAt)
}

// UpsertActivity inserts or replaces the step count of a day. When an
// integration count meets a manual one, the manual count is kept and
// [ErrNotModified] is returned.
func (a *activityRepository) UpsertActivity(ctx context.Context, activity models.PhysicalActivity) (models.PhysicalActivity, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, upsertActivity, activity.UserID, activity.Date, activity.Steps, activity.Source)

	var saved models.PhysicalActivity
	if err := scanActivity(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "activityRepository.UpsertActivity").
				Int64("user_id", activity.UserID).
				Str("date", activity.Date.String()).
				Msg("manual step count kept")
			return models.PhysicalActivity{}, ErrNotModified
		}
		log.Err(err).
			Str("func", "activityRepository.UpsertActivity").
			Int64("user_id", activity.UserID).
			Msg("failed to upsert activity")
		return models.PhysicalActivity{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return saved, nil
}

func (a *activityRepository) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.PhysicalActivity, error) {
	query, args, err := buildListByDateQuery(ctx, "physical_activities", activityColumns, filter)
	if err != nil {
		return nil, err
	}

	return queryList(ctx, a.DB, "activityRepository.ListActivities", scanActivity, query, args...)
}

func (a *activityRepository) CreateExerciseType(ctx context.Context, exerciseType models.ExerciseType) (models.ExerciseType, error) {
	log := logger.FromContext(ctx)

	var created models.ExerciseType
	row := a.DB.QueryRowContext(ctx, createExerciseType, exerciseType.Name, exerciseType.CaloriesPerMinute)
	if err := scanExerciseType(row, &created); err != nil {
		log.Err(err).
			Str("func", "activityRepository.CreateExerciseType").
			Str("name", exerciseType.Name).
			Msg("failed to insert exercise type")
		return models.ExerciseType{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

func (a *activityRepository) GetExerciseType(ctx context.Context, id int64) (models.ExerciseType, error) {
	var exerciseType models.ExerciseType
	err := queryOne(ctx, a.DB, "activityRepository.GetExerciseType", func(row rowScanner) error {
		return scanExerciseType(row, &exerciseType)
	}, getExerciseType, id)

	return exerciseType, err
}

func (a *activityRepository) ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error) {
	return queryList(ctx, a.DB, "activityRepository.ListExerciseTypes", scanExerciseType, listExerciseTypes)
}

func (a *activityRepository) CreateExercise(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	log := logger.FromContext(ctx)

	var created models.ExerciseEntry
	row := a.DB.QueryRowContext(ctx, createExercise,
		entry.UserID,
		entry.ExerciseTypeID,
		entry.Date,
		entry.Duration,
		entry.Calories,
		entry.Notes,
	)
	if err := scanExercise(row, &created); err != nil {
		log.Err(err).
			Str("func", "activityRepository.CreateExercise").
			Int64("user_id", entry.UserID).
			Msg("failed to insert exercise entry")
		return models.ExerciseEntry{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

func (a *activityRepository) GetExercise(ctx context.Context, id int64) (models.ExerciseEntry, error) {
	var entry models.ExerciseEntry
	err := queryOne(ctx, a.DB, "activityRepository.GetExercise", func(row rowScanner) error {
		return scanExercise(row, &entry)
	}, getExercise, id)

	return entry, err
}

func (a *activityRepository) ListExercises(ctx context.Context, filter models.ActivityFilter) ([]models.ExerciseEntry, error) {
	query, args, err := buildListByDateQuery(ctx, "exercise_entries", exerciseColumns, filter)
	if err != nil {
		return nil, err
	}

	return queryList(ctx, a.DB, "activityRepository.ListExercises", scanExercise, query, args...)
}

func (a *activityRepository) DeleteExercise(ctx context.Context, id int64) error {
	return a.DB.execOne(ctx, "activityRepository.DeleteExercise", deleteExercise, id)
}
