package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/models"
)

type mealService struct {
	mealRepository store.MealRepository
	gate           AccessGate
	cache          *cache.Client
	logger         *logger.Logger
}

// NewMealService builds the meal service. Writes invalidate the owner's
// nutritionist dashboard in cache.
func NewMealService(meals store.MealRepository, gate AccessGate, cache *cache.Client, logger *logger.Logger) MealService {
	return &mealService{
		mealRepository: meals,
		gate:           gate,
		cache:          cache,
		logger:         logger,
	}
}

// mapNotFound turns the store's not-found sentinel into the service one.
func mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Create logs a meal for the calling client.
func (m *mealService) Create(ctx context.Context, actor models.Actor, meal models.Meal) (models.Meal, error) {
	client, ok := actor.(models.ClientActor)
	if !ok {
		return models.Meal{}, ErrForbidden
	}

	meal.UserID = client.ID
	created, err := m.mealRepository.CreateMeal(ctx, meal)
	if err != nil {
		return models.Meal{}, fmt.Errorf("meal creation failed: %w", err)
	}

	invalidateSummaries(ctx, m.cache, client.NutritionistID)
	return created, nil
}

func (m *mealService) Get(ctx context.Context, actor models.Actor, id int64) (models.Meal, error) {
	meal, _, err := m.authorizedMeal(ctx, actor, id)
	return meal, err
}

func (m *mealService) List(ctx context.Context, actor models.Actor, filter models.MealFilter) ([]models.Meal, error) {
	filter.UserID = ownerOrSelf(actor, filter.UserID)
	if _, err := m.gate.Authorize(ctx, actor, filter.UserID); err != nil {
		return nil, err
	}

	return m.mealRepository.ListMeals(ctx, filter)
}

// Day returns the meals of one day grouped by slot. Several meals of the
// same slot are all kept.
func (m *mealService) Day(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DayMeals, error) {
	userID = ownerOrSelf(actor, userID)
	if _, err := m.gate.Authorize(ctx, actor, userID); err != nil {
		return models.DayMeals{}, err
	}

	meals, err := m.mealRepository.ListMeals(ctx, models.MealFilter{UserID: userID, From: &date, To: &date})
	if err != nil {
		return models.DayMeals{}, err
	}

	return models.NewDayMeals(date, meals), nil
}

func (m *mealService) Totals(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DailyTotals, error) {
	userID = ownerOrSelf(actor, userID)
	if _, err := m.gate.Authorize(ctx, actor, userID); err != nil {
		return models.DailyTotals{}, err
	}

	return m.mealRepository.DailyTotals(ctx, userID, date)
}

func (m *mealService) Update(ctx context.Context, actor models.Actor, update models.MealUpdate) (models.Meal, error) {
	_, owner, err := m.authorizedMeal(ctx, actor, update.ID)
	if err != nil {
		return models.Meal{}, err
	}

	updated, err := m.mealRepository.UpdateMeal(ctx, update)
	if err != nil {
		return models.Meal{}, mapNotFound(err)
	}

	invalidateSummaries(ctx, m.cache, owner.NutritionistID)
	return updated, nil
}

// Delete removes a meal. Only the owning client may delete; the nutritionist
// can read, update and comment but not delete.
func (m *mealService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	meal, owner, err := m.authorizedMeal(ctx, actor, id)
	if err != nil {
		return err
	}
	if meal.UserID != actor.ActorID() {
		return ErrForbidden
	}

	if err = m.mealRepository.DeleteMeal(ctx, id); err != nil {
		return mapNotFound(err)
	}

	logger.FromContext(ctx).Info().Int64("meal_id", id).Int64("actor_id", actor.ActorID()).Msg("meal deleted")
	invalidateSummaries(ctx, m.cache, owner.NutritionistID)
	return nil
}

// authorizedMeal loads a meal and checks the actor may access it.
func (m *mealService) authorizedMeal(ctx context.Context, actor models.Actor, id int64) (models.Meal, models.User, error) {
	meal, err := m.mealRepository.GetMeal(ctx, id)
	if err != nil {
		return models.Meal{}, models.User{}, mapNotFound(err)
	}

	owner, err := m.gate.Authorize(ctx, actor, meal.UserID)
	if err != nil {
		return models.Meal{}, models.User{}, err
	}

	return meal, owner, nil
}
