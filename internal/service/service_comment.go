package service

import (
	"context"
	"fmt"

	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	mealRepository    store.MealRepository
	gate              AccessGate
	validator         validators.Validator
	cache             *cache.Client
	logger            *logger.Logger
}

// NewCommentService builds the comment service; meals are loaded to find
// their owner before any access check.
func NewCommentService(comments store.CommentRepository, meals store.MealRepository, gate AccessGate,
	validator validators.Validator, cache *cache.Client, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: comments,
		mealRepository:    meals,
		gate:              gate,
		validator:         validator,
		cache:             cache,
		logger:            logger,
	}
}

// Create adds a comment to a meal. Only the nutritionist of the meal owner
// may comment.
func (c *commentService) Create(ctx context.Context, actor models.Actor, mealID int64, req models.CommentRequest) (models.Comment, error) {
	nutritionist, ok := actor.(models.NutritionistActor)
	if !ok {
		return models.Comment{}, ErrForbidden
	}

	req.Content = utils.SanitizeText(req.Content)
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("comment validation: %w", err)
	}

	owner, err := c.mealOwner(ctx, actor, mealID)
	if err != nil {
		return models.Comment{}, err
	}

	comment, err := c.commentRepository.CreateComment(ctx, models.Comment{
		MealID:         mealID,
		NutritionistID: nutritionist.ID,
		Content:        req.Content,
	})
	if err != nil {
		return models.Comment{}, mapNotFound(err)
	}

	invalidateSummaries(ctx, c.cache, owner.NutritionistID)
	return comment, nil
}

func (c *commentService) List(ctx context.Context, actor models.Actor, mealID int64) ([]models.Comment, error) {
	if _, err := c.mealOwner(ctx, actor, mealID); err != nil {
		return nil, err
	}

	return c.commentRepository.ListComments(ctx, mealID)
}

// MarkRead flags one comment as read. Only the meal owner reads comments.
func (c *commentService) MarkRead(ctx context.Context, actor models.Actor, commentID int64) error {
	if _, ok := actor.(models.ClientActor); !ok {
		return ErrForbidden
	}

	comment, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return mapNotFound(err)
	}

	owner, err := c.mealOwner(ctx, actor, comment.MealID)
	if err != nil {
		return err
	}

	if err = c.commentRepository.MarkCommentRead(ctx, commentID); err != nil {
		return mapNotFound(err)
	}

	invalidateSummaries(ctx, c.cache, owner.NutritionistID)
	return nil
}

// MarkMealRead flags every comment of a meal as read and returns how many
// changed.
func (c *commentService) MarkMealRead(ctx context.Context, actor models.Actor, mealID int64) (int64, error) {
	if _, ok := actor.(models.ClientActor); !ok {
		return 0, ErrForbidden
	}

	owner, err := c.mealOwner(ctx, actor, mealID)
	if err != nil {
		return 0, err
	}

	updated, err := c.commentRepository.MarkMealCommentsRead(ctx, mealID)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		invalidateSummaries(ctx, c.cache, owner.NutritionistID)
	}
	return updated, nil
}

func (c *commentService) mealOwner(ctx context.Context, actor models.Actor, mealID int64) (models.User, error) {
	meal, err := c.mealRepository.GetMeal(ctx, mealID)
	if err != nil {
		return models.User{}, mapNotFound(err)
	}

	return c.gate.Authorize(ctx, actor, meal.UserID)
}
