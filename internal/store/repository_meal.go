package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

// mealRepository is the PostgreSQL-backed implementation of
// [MealRepository] over the "meals" table. meal_time is a TIME column read
// back as "HH:MM".
type mealRepository struct {
	*DB
	logger *logger.Logger
}

// NewMealRepository constructs a [MealRepository].
func NewMealRepository(db *DB, logger *logger.Logger) MealRepository {
	return &mealRepository{
		DB:     db,
		logger: logger,
	}
}

func scanMeal(row rowScanner, meal *models.Meal) error {
	return row.Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Date,
		&meal.Time,
		&meal.Type,
		&meal.Name,
		&meal.Description,
		&meal.Calories,
		&meal.Duration,
		&meal.WaterIntake,
		&meal.Notes,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)
}

func (m *mealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	row := m.DB.QueryRowContext(ctx, createMeal,
		meal.UserID,
		meal.Date,
		meal.Time,
		meal.Type,
		meal.Name,
		meal.Description,
		meal.Calories,
		meal.Duration,
		meal.WaterIntake,
		meal.Notes,
	)

	var created models.Meal
	if err := scanMeal(row, &created); err != nil {
		log.Err(err).
			Str("func", "mealRepository.CreateMeal").
			Int64("user_id", meal.UserID).
			Msg("failed to insert meal")
		return models.Meal{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return created, nil
}

func (m *mealRepository) GetMeal(ctx context.Context, id int64) (models.Meal, error) {
	log := logger.FromContext(ctx)

	var meal models.Meal
	if err := scanMeal(m.DB.QueryRowContext(ctx, getMeal, id), &meal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrNotFound
		}
		log.Err(err).Str("func", "mealRepository.GetMeal").Int64("meal_id", id).Msg("failed to query meal")
		return models.Meal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return meal, nil
}

// ListMeals returns the meals matching filter, newest first.
func (m *mealRepository) ListMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMealsQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mealRepository.ListMeals").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing meals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	meals := make([]models.Meal, 0, 16)
	for rows.Next() {
		var meal models.Meal
		if scanErr := scanMeal(rows, &meal); scanErr != nil {
			log.Err(scanErr).
				Str("func", "mealRepository.ListMeals").
				Int64("user_id", filter.UserID).
				Msg("failed to scan meal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		meals = append(meals, meal)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mealRepository.ListMeals").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return meals, nil
}

// UpdateMeal writes the non-nil fields of update and returns the stored
// meal.
func (m *mealRepository) UpdateMeal(ctx context.Context, update models.MealUpdate) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMealQuery(ctx, update)
	if err != nil {
		return models.Meal{}, err
	}

	var meal models.Meal
	if err = scanMeal(m.DB.QueryRowContext(ctx, query, args...), &meal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "mealRepository.UpdateMeal").
			Int64("meal_id", update.ID).
			Msg("failed to update meal")
		return models.Meal{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return meal, nil
}

// DeleteMeal removes the meal and, by cascade, its comments.
func (m *mealRepository) DeleteMeal(ctx context.Context, id int64) error {
	return m.DB.execOne(ctx, "mealRepository.DeleteMeal", deleteMeal, id)
}

// DailyTotals sums calories and water and counts meals per slot for one day.
func (m *mealRepository) DailyTotals(ctx context.Context, userID int64, date models.Date) (models.DailyTotals, error) {
	log := logger.FromContext(ctx)

	totals := models.DailyTotals{
		UserID: userID,
		Date:   date,
		ByType: make(map[models.MealType]int, len(models.MealTypes)),
	}
	for _, t := range models.MealTypes {
		totals.ByType[t] = 0
	}

	rows, err := m.DB.QueryContext(ctx, dailyTotalsByType, userID, date)
	if err != nil {
		log.Err(err).
			Str("func", "mealRepository.DailyTotals").
			Int64("user_id", userID).
			Msg("failed to execute totals query")
		return models.DailyTotals{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mealType models.MealType
			count    int
			calories float64
			water    float64
		)
		if scanErr := rows.Scan(&mealType, &count, &calories, &water); scanErr != nil {
			log.Err(scanErr).Str("func", "mealRepository.DailyTotals").Msg("failed to scan totals row")
			return models.DailyTotals{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		totals.ByType[mealType] = count
		totals.MealCount += count
		totals.Calories += calories
		totals.WaterIntake += water
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return models.DailyTotals{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return totals, nil
}
