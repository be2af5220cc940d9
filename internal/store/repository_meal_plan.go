package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

// mealPlanRepository is the PostgreSQL-backed implementation of
// [MealPlanRepository] over "meal_plans" and "meal_plan_details".
type mealPlanRepository struct {
	*DB
	logger *logger.Logger
}

// NewMealPlanRepository constructs a [MealPlanRepository].
func NewMealPlanRepository(db *DB, logger *logger.Logger) MealPlanRepository {
	return &mealPlanRepository{
		DB:     db,
		logger: logger,
	}
}

func scanMealPlan(row rowScanner, plan *models.MealPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.NutritionistID,
		&plan.WeekStart,
		&plan.WeekEnd,
		&plan.Published,
		&plan.Active,
		&plan.Notes,
		&plan.CreatedAt,
	)
}

// CreateMealPlan stores a plan with its details inside a single
// transaction. An active plan first deactivates the previous active plan of
// the client, keeping at most one active plan per client.
//
// The transaction is rolled back automatically (via defer) if any statement
// fails.
func (p *mealPlanRepository) CreateMealPlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.CreateMealPlan").
			Int64("user_id", plan.UserID).
			Msg("failed to begin transaction")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if plan.Active {
		if _, err = tx.ExecContext(ctx, deactivateMealPlans, plan.UserID); err != nil {
			log.Err(err).
				Str("func", "mealPlanRepository.CreateMealPlan").
				Int64("user_id", plan.UserID).
				Msg("failed to deactivate previous plans")
			return models.MealPlan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var created models.MealPlan
	row := tx.QueryRowContext(ctx, createMealPlan,
		plan.UserID,
		plan.NutritionistID,
		plan.WeekStart,
		plan.WeekEnd,
		plan.Published,
		plan.Active,
		plan.Notes,
	)
	if err = scanMealPlan(row, &created); err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.CreateMealPlan").
			Int64("user_id", plan.UserID).
			Msg("failed to insert meal plan")
		return models.MealPlan{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	created.Details = make([]models.MealPlanDetail, 0, len(plan.Details))
	for idx, detail := range plan.Details {
		detail.MealPlanID = created.ID

		scanErr := tx.QueryRowContext(ctx, createMealPlanDetail,
			detail.MealPlanID,
			detail.Day,
			detail.MealType,
			detail.Description,
			detail.ImageURL,
		).Scan(&detail.ID)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "mealPlanRepository.CreateMealPlan").
				Int("iteration", idx+1).
				Int("total", len(plan.Details)).
				Msg("failed to insert meal plan detail")
			return models.MealPlan{}, classifyError(scanErr, ErrAlreadyExists, ErrExecutingQuery)
		}

		created.Details = append(created.Details, detail)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mealPlanRepository.CreateMealPlan").
			Int64("user_id", plan.UserID).
			Msg("failed to commit transaction")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "mealPlanRepository.CreateMealPlan").
		Int64("meal_plan_id", created.ID).
		Int("details", len(created.Details)).
		Msg("meal plan created")

	return created, nil
}

// GetMealPlan returns a plan with its details.
func (p *mealPlanRepository) GetMealPlan(ctx context.Context, id int64) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	var plan models.MealPlan
	if err := scanMealPlan(p.DB.QueryRowContext(ctx, getMealPlan, id), &plan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MealPlan{}, ErrNotFound
		}
		log.Err(err).Str("func", "mealPlanRepository.GetMealPlan").Int64("meal_plan_id", id).Msg("failed to query meal plan")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	details, err := p.loadDetails(ctx, []int64{plan.ID})
	if err != nil {
		return models.MealPlan{}, err
	}
	plan.Details = details[plan.ID]
	if plan.Details == nil {
		plan.Details = []models.MealPlanDetail{}
	}

	return plan, nil
}

// ListMealPlans returns the plans matching filter with their details.
func (p *mealPlanRepository) ListMealPlans(ctx context.Context, filter models.MealPlanFilter) ([]models.MealPlan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMealPlansQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.ListMealPlans").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing meal plans")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plans := make([]models.MealPlan, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var plan models.MealPlan
		if scanErr := scanMealPlan(rows, &plan); scanErr != nil {
			log.Err(scanErr).Str("func", "mealPlanRepository.ListMealPlans").Msg("failed to scan meal plan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		plans = append(plans, plan)
		ids = append(ids, plan.ID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(plans) == 0 {
		return plans, nil
	}

	details, err := p.loadDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Details = details[plans[i].ID]
		if plans[i].Details == nil {
			plans[i].Details = []models.MealPlanDetail{}
		}
	}

	return plans, nil
}

func (p *mealPlanRepository) PublishMealPlan(ctx context.Context, id int64) error {
	return p.DB.execOne(ctx, "mealPlanRepository.PublishMealPlan", publishMealPlan, id)
}

// DeleteMealPlan removes the plan and, by cascade, its details.
func (p *mealPlanRepository) DeleteMealPlan(ctx context.Context, id int64) error {
	return p.DB.execOne(ctx, "mealPlanRepository.DeleteMealPlan", deleteMealPlan, id)
}

func (p *mealPlanRepository) loadDetails(ctx context.Context, planIDs []int64) (map[int64][]models.MealPlanDetail, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listMealPlanDetails, planIDs)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.loadDetails").
			Int("plans", len(planIDs)).
			Msg("failed to execute query for plan details")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	details := make(map[int64][]models.MealPlanDetail, len(planIDs))
	for rows.Next() {
		var d models.MealPlanDetail
		if scanErr := rows.Scan(&d.ID, &d.MealPlanID, &d.Day, &d.MealType, &d.Description, &d.ImageURL); scanErr != nil {
			log.Err(scanErr).Str("func", "mealPlanRepository.loadDetails").Msg("failed to scan detail row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		details[d.MealPlanID] = append(details[d.MealPlanID], d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return details, nil
}
