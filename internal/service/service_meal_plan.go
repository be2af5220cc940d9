package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

type mealPlanService struct {
	mealPlanRepository store.MealPlanRepository
	gate               AccessGate
	validator          validators.Validator
	logger             *logger.Logger
}

// NewMealPlanService builds the plan service; ownership goes through gate.
func NewMealPlanService(plans store.MealPlanRepository, gate AccessGate, validator validators.Validator, logger *logger.Logger) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: plans,
		gate:               gate,
		validator:          validator,
		logger:             logger,
	}
}

// Create stores a plan written by the client's nutritionist. Every new plan
// is active and replaces the client's previous active one.
func (p *mealPlanService) Create(ctx context.Context, actor models.Actor, plan models.MealPlan) (models.MealPlan, error) {
	nutritionist, ok := actor.(models.NutritionistActor)
	if !ok {
		return models.MealPlan{}, ErrForbidden
	}

	plan.Notes = utils.SanitizeText(plan.Notes)
	for i := range plan.Details {
		plan.Details[i].Description = utils.SanitizeText(plan.Details[i].Description)
	}

	if err := p.validator.Validate(ctx, plan); err != nil {
		return models.MealPlan{}, fmt.Errorf("meal plan validation: %w", err)
	}

	if _, err := p.gate.Authorize(ctx, actor, plan.UserID); err != nil {
		return models.MealPlan{}, err
	}

	plan.NutritionistID = nutritionist.ID
	plan.Active = true
	created, err := p.mealPlanRepository.CreateMealPlan(ctx, plan)
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.MealPlan{}, fmt.Errorf("%w: concurrent active plan for user %d", ErrAlreadyExists, plan.UserID)
	}
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("meal plan creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("plan_id", created.ID).
		Int64("user_id", created.UserID).
		Int("details", len(created.Details)).
		Msg("meal plan created")
	return created, nil
}

// Get returns a plan. Clients only see published plans; a draft is
// reported as not found to them.
func (p *mealPlanService) Get(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error) {
	plan, err := p.mealPlanRepository.GetMealPlan(ctx, id)
	if err != nil {
		return models.MealPlan{}, mapNotFound(err)
	}

	if _, err = p.gate.Authorize(ctx, actor, plan.UserID); err != nil {
		return models.MealPlan{}, err
	}

	if _, isClient := actor.(models.ClientActor); isClient && !plan.Published {
		return models.MealPlan{}, ErrNotFound
	}

	return plan, nil
}

// List returns the plans of filter.UserID (the caller when zero). Clients
// are always limited to published plans; ActiveOnly narrows to the current one.
func (p *mealPlanService) List(ctx context.Context, actor models.Actor, filter models.MealPlanFilter) ([]models.MealPlan, error) {
	filter.UserID = ownerOrSelf(actor, filter.UserID)
	if _, err := p.gate.Authorize(ctx, actor, filter.UserID); err != nil {
		return nil, err
	}

	_, isClient := actor.(models.ClientActor)
	filter.PublishedOnly = isClient
	return p.mealPlanRepository.ListMealPlans(ctx, filter)
}

func (p *mealPlanService) Publish(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error) {
	if _, ok := actor.(models.NutritionistActor); !ok {
		return models.MealPlan{}, ErrForbidden
	}

	plan, err := p.Get(ctx, actor, id)
	if err != nil {
		return models.MealPlan{}, err
	}

	if err = p.mealPlanRepository.PublishMealPlan(ctx, id); err != nil {
		return models.MealPlan{}, mapNotFound(err)
	}

	plan.Published = true
	return plan, nil
}

func (p *mealPlanService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if _, ok := actor.(models.NutritionistActor); !ok {
		return ErrForbidden
	}

	if _, err := p.Get(ctx, actor, id); err != nil {
		return err
	}

	return mapNotFound(p.mealPlanRepository.DeleteMealPlan(ctx, id))
}
