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

type activityService struct {
	activityRepository store.ActivityRepository
	gate               AccessGate
	validator          validators.Validator
	logger             *logger.Logger
}

// NewActivityService builds the steps and exercise service.
func NewActivityService(activities store.ActivityRepository, gate AccessGate, validator validators.Validator, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activities,
		gate:               gate,
		validator:          validator,
		logger:             logger,
	}
}

// RecordSteps stores a manually entered step count. A manual count always
// replaces whatever is stored for that day.
func (a *activityService) RecordSteps(ctx context.Context, actor models.Actor, activity models.PhysicalActivity) (models.PhysicalActivity, error) {
	activity.UserID = ownerOrSelf(actor, activity.UserID)
	activity.Source = models.SourceManual

	if err := a.validator.Validate(ctx, activity); err != nil {
		return models.PhysicalActivity{}, fmt.Errorf("activity validation: %w", err)
	}

	if _, err := a.gate.Authorize(ctx, actor, activity.UserID); err != nil {
		return models.PhysicalActivity{}, err
	}

	return a.activityRepository.UpsertActivity(ctx, activity)
}

func (a *activityService) ListActivities(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.PhysicalActivity, error) {
	filter.UserID = ownerOrSelf(actor, filter.UserID)
	if _, err := a.gate.Authorize(ctx, actor, filter.UserID); err != nil {
		return nil, err
	}

	return a.activityRepository.ListActivities(ctx, filter)
}

// CreateExerciseType adds an entry to the shared exercise catalogue.
// Only nutritionists maintain the catalogue.
func (a *activityService) CreateExerciseType(ctx context.Context, actor models.Actor, exerciseType models.ExerciseType) (models.ExerciseType, error) {
	if _, ok := actor.(models.NutritionistActor); !ok {
		return models.ExerciseType{}, ErrForbidden
	}

	exerciseType.Name = utils.SanitizeText(exerciseType.Name)
	if err := a.validator.Validate(ctx, exerciseType); err != nil {
		return models.ExerciseType{}, fmt.Errorf("exercise type validation: %w", err)
	}

	created, err := a.activityRepository.CreateExerciseType(ctx, exerciseType)
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.ExerciseType{}, ErrAlreadyExists
	}
	return created, err
}

func (a *activityService) ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error) {
	return a.activityRepository.ListExerciseTypes(ctx)
}

// LogExercise stores an exercise session. Without explicit calories the
// burn is estimated from the catalogue rate.
func (a *activityService) LogExercise(ctx context.Context, actor models.Actor, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	entry.UserID = ownerOrSelf(actor, entry.UserID)
	entry.Notes = utils.SanitizeText(entry.Notes)

	if err := a.validator.Validate(ctx, entry); err != nil {
		return models.ExerciseEntry{}, fmt.Errorf("exercise validation: %w", err)
	}

	if _, err := a.gate.Authorize(ctx, actor, entry.UserID); err != nil {
		return models.ExerciseEntry{}, err
	}

	exerciseType, err := a.activityRepository.GetExerciseType(ctx, entry.ExerciseTypeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ExerciseEntry{}, unknownExerciseType()
		}
		return models.ExerciseEntry{}, err
	}

	if entry.Calories == nil {
		burned := exerciseType.CaloriesPerMinute * float64(entry.Duration)
		entry.Calories = &burned
	}

	created, err := a.activityRepository.CreateExercise(ctx, entry)
	if errors.Is(err, store.ErrReferenceNotFound) {
		return models.ExerciseEntry{}, unknownExerciseType()
	}
	return created, err
}

func (a *activityService) ListExercises(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.ExerciseEntry, error) {
	filter.UserID = ownerOrSelf(actor, filter.UserID)
	if _, err := a.gate.Authorize(ctx, actor, filter.UserID); err != nil {
		return nil, err
	}

	return a.activityRepository.ListExercises(ctx, filter)
}

func (a *activityService) DeleteExercise(ctx context.Context, actor models.Actor, id int64) error {
	entry, err := a.activityRepository.GetExercise(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	if _, err = a.gate.Authorize(ctx, actor, entry.UserID); err != nil {
		return err
	}

	return mapNotFound(a.activityRepository.DeleteExercise(ctx, id))
}

func unknownExerciseType() error {
	return &validators.ValidationError{Fields: []validators.FieldError{{
		Field:   validators.FieldExerciseTypeID,
		Message: validators.MsgUnknownReference,
	}}}
}
