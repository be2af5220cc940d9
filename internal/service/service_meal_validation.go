package service

import (
	"context"
	"fmt"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

// mealFields are validated on create. user_id is filled in by the inner
// service from the actor.
var mealFields = []string{
	validators.FieldDate, validators.FieldTime, validators.FieldType, validators.FieldName,
	validators.FieldDescription, validators.FieldCalories, validators.FieldDuration,
	validators.FieldWaterIntake, validators.FieldNotes,
}

// MealValidationService sanitises free text and validates meal payloads
// before delegating to the wrapped MealService.
type MealValidationService struct {
	inner     MealService
	validator validators.Validator
}

// NewMealValidationService returns a wrapper validating meal input before
// it reaches the wrapped MealService.
func NewMealValidationService(validator validators.Validator) MealServiceWrapper {
	return &MealValidationService{
		validator: validator,
	}
}

func (v *MealValidationService) Create(ctx context.Context, actor models.Actor, meal models.Meal) (models.Meal, error) {
	meal.Name = utils.SanitizeText(meal.Name)
	meal.Description = utils.SanitizeText(meal.Description)
	meal.Notes = utils.SanitizeText(meal.Notes)

	if err := v.validator.Validate(ctx, meal, mealFields...); err != nil {
		return models.Meal{}, fmt.Errorf("meal validation before saving: %w", err)
	}

	return v.inner.Create(ctx, actor, meal)
}

func (v *MealValidationService) Get(ctx context.Context, actor models.Actor, id int64) (models.Meal, error) {
	return v.inner.Get(ctx, actor, id)
}

func (v *MealValidationService) List(ctx context.Context, actor models.Actor, filter models.MealFilter) ([]models.Meal, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, &validators.ValidationError{Fields: []validators.FieldError{{
			Field: validators.FieldType, Message: validators.MsgInvalidMealType,
		}}}
	}
	return v.inner.List(ctx, actor, filter)
}

func (v *MealValidationService) Day(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DayMeals, error) {
	return v.inner.Day(ctx, actor, userID, date)
}

func (v *MealValidationService) Totals(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DailyTotals, error) {
	return v.inner.Totals(ctx, actor, userID, date)
}

func (v *MealValidationService) Update(ctx context.Context, actor models.Actor, update models.MealUpdate) (models.Meal, error) {
	update.Name = utils.SanitizeTextPtr(update.Name)
	update.Description = utils.SanitizeTextPtr(update.Description)
	update.Notes = utils.SanitizeTextPtr(update.Notes)

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Meal{}, fmt.Errorf("meal validation before update: %w", err)
	}

	return v.inner.Update(ctx, actor, update)
}

func (v *MealValidationService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	return v.inner.Delete(ctx, actor, id)
}

func (v *MealValidationService) Wrap(wrapped MealService) MealService {
	v.inner = wrapped
	return v
}
