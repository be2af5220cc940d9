package store

import (
	"context"
	"time"

	"github.com/ralona/nutritracker/models"
)

type MealRepository interface {
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)
	GetMeal(ctx context.Context, id int64) (models.Meal, error)
	ListMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, update models.MealUpdate) (models.Meal, error)
	DeleteMeal(ctx context.Context, id int64) error
	DailyTotals(ctx context.Context, userID int64, date models.Date) (models.DailyTotals, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	ListComments(ctx context.Context, mealID int64) ([]models.Comment, error)
	MarkCommentRead(ctx context.Context, id int64) error
	MarkMealCommentsRead(ctx context.Context, mealID int64) (int64, error)
}

type MealPlanRepository interface {
	// CreateMealPlan stores plan and its details. When plan is active, the
	// previously active plan of the same client is deactivated in the same
	// transaction.
	CreateMealPlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error)
	GetMealPlan(ctx context.Context, id int64) (models.MealPlan, error)
	ListMealPlans(ctx context.Context, filter models.MealPlanFilter) ([]models.MealPlan, error)
	PublishMealPlan(ctx context.Context, id int64) error
	DeleteMealPlan(ctx context.Context, id int64) error
}

type ActivityRepository interface {
	// UpsertActivity writes the step count of a day. A manual count is never
	// replaced by an integration one; in that case ErrNotModified is returned.
	UpsertActivity(ctx context.Context, activity models.PhysicalActivity) (models.PhysicalActivity, error)
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.PhysicalActivity, error)

	CreateExerciseType(ctx context.Context, exerciseType models.ExerciseType) (models.ExerciseType, error)
	GetExerciseType(ctx context.Context, id int64) (models.ExerciseType, error)
	ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error)

	CreateExercise(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error)
	GetExercise(ctx context.Context, id int64) (models.ExerciseEntry, error)
	ListExercises(ctx context.Context, filter models.ActivityFilter) ([]models.ExerciseEntry, error)
	DeleteExercise(ctx context.Context, id int64) error
}

type IntegrationRepository interface {
	// SaveIntegration inserts or replaces the integration of a user with a
	// provider.
	SaveIntegration(ctx context.Context, integration models.HealthIntegration) (models.HealthIntegration, error)
	GetIntegration(ctx context.Context, id int64) (models.HealthIntegration, error)
	ListIntegrations(ctx context.Context, userID int64) ([]models.HealthIntegration, error)
	ListAllIntegrations(ctx context.Context) ([]models.HealthIntegration, error)
	UpdateIntegrationTokens(ctx context.Context, integration models.HealthIntegration) error
	MarkIntegrationSynced(ctx context.Context, id int64, at time.Time) error
	DeleteIntegration(ctx context.Context, id int64) error
}

type ProgressRepository interface {
	// ClientStats aggregates the meals and unread comments of every client of
	// nutritionistID over the inclusive day range [from, to].
	ClientStats(ctx context.Context, nutritionistID int64, from, to models.Date) ([]models.ClientStats, error)

	// LatestMeals returns the most recent meal in [from, to] of each user in
	// userIDs. Users without meals are absent from the map.
	LatestMeals(ctx context.Context, userIDs []int64, from, to models.Date) (map[int64]models.Meal, error)
}
