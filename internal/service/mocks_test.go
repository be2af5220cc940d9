package service

import (
	"context"
	"time"

	"github.com/ralona/nutritracker/models"
	"golang.org/x/oauth2"
)

// ─────────────────────────────────────────────
// Mock: AccessGate
// ─────────────────────────────────────────────

type mockGate struct {
	authorizeFn func(ctx context.Context, actor models.Actor, ownerID int64) (models.User, error)
}

func (m *mockGate) Authorize(ctx context.Context, actor models.Actor, ownerID int64) (models.User, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, actor, ownerID)
	}
	return models.User{ID: ownerID, Role: models.RoleClient}, nil
}

// ─────────────────────────────────────────────
// Mock: store.MealRepository
// ─────────────────────────────────────────────

type mockMealRepository struct {
	createFn func(ctx context.Context, meal models.Meal) (models.Meal, error)
	getFn    func(ctx context.Context, id int64) (models.Meal, error)
	listFn   func(ctx context.Context, filter models.MealFilter) ([]models.Meal, error)
	updateFn func(ctx context.Context, update models.MealUpdate) (models.Meal, error)
	deleteFn func(ctx context.Context, id int64) error
	totalsFn func(ctx context.Context, userID int64, date models.Date) (models.DailyTotals, error)
}

func (m *mockMealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	if m.createFn != nil {
		return m.createFn(ctx, meal)
	}
	return meal, nil
}

func (m *mockMealRepository) GetMeal(ctx context.Context, id int64) (models.Meal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Meal{ID: id}, nil
}

func (m *mockMealRepository) ListMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMealRepository) UpdateMeal(ctx context.Context, update models.MealUpdate) (models.Meal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Meal{ID: update.ID}, nil
}

func (m *mockMealRepository) DeleteMeal(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockMealRepository) DailyTotals(ctx context.Context, userID int64, date models.Date) (models.DailyTotals, error) {
	if m.totalsFn != nil {
		return m.totalsFn(ctx, userID, date)
	}
	return models.DailyTotals{UserID: userID, Date: date}, nil
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createFn       func(ctx context.Context, comment models.Comment) (models.Comment, error)
	getFn          func(ctx context.Context, id int64) (models.Comment, error)
	listFn         func(ctx context.Context, mealID int64) ([]models.Comment, error)
	markReadFn     func(ctx context.Context, id int64) error
	markMealReadFn func(ctx context.Context, mealID int64) (int64, error)
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Comment{ID: id}, nil
}

func (m *mockCommentRepository) ListComments(ctx context.Context, mealID int64) ([]models.Comment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, mealID)
	}
	return nil, nil
}

func (m *mockCommentRepository) MarkCommentRead(ctx context.Context, id int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) MarkMealCommentsRead(ctx context.Context, mealID int64) (int64, error) {
	if m.markMealReadFn != nil {
		return m.markMealReadFn(ctx, mealID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.MealPlanRepository
// ─────────────────────────────────────────────

type mockMealPlanRepository struct {
	createFn  func(ctx context.Context, plan models.MealPlan) (models.MealPlan, error)
	getFn     func(ctx context.Context, id int64) (models.MealPlan, error)
	listFn    func(ctx context.Context, filter models.MealPlanFilter) ([]models.MealPlan, error)
	publishFn func(ctx context.Context, id int64) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockMealPlanRepository) CreateMealPlan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error) {
	if m.createFn != nil {
		return m.createFn(ctx, plan)
	}
	return plan, nil
}

func (m *mockMealPlanRepository) GetMealPlan(ctx context.Context, id int64) (models.MealPlan, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.MealPlan{ID: id}, nil
}

func (m *mockMealPlanRepository) ListMealPlans(ctx context.Context, filter models.MealPlanFilter) ([]models.MealPlan, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMealPlanRepository) PublishMealPlan(ctx context.Context, id int64) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, id)
	}
	return nil
}

func (m *mockMealPlanRepository) DeleteMealPlan(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ActivityRepository
// ─────────────────────────────────────────────

type mockActivityRepository struct {
	upsertFn         func(ctx context.Context, activity models.PhysicalActivity) (models.PhysicalActivity, error)
	listActivitiesFn func(ctx context.Context, filter models.ActivityFilter) ([]models.PhysicalActivity, error)
	createTypeFn     func(ctx context.Context, exerciseType models.ExerciseType) (models.ExerciseType, error)
	getTypeFn        func(ctx context.Context, id int64) (models.ExerciseType, error)
	listTypesFn      func(ctx context.Context) ([]models.ExerciseType, error)
	createExerciseFn func(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error)
	getExerciseFn    func(ctx context.Context, id int64) (models.ExerciseEntry, error)
	listExercisesFn  func(ctx context.Context, filter models.ActivityFilter) ([]models.ExerciseEntry, error)
	deleteExerciseFn func(ctx context.Context, id int64) error
}

func (m *mockActivityRepository) UpsertActivity(ctx context.Context, activity models.PhysicalActivity) (models.PhysicalActivity, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, activity)
	}
	return activity, nil
}

func (m *mockActivityRepository) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.PhysicalActivity, error) {
	if m.listActivitiesFn != nil {
		return m.listActivitiesFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockActivityRepository) CreateExerciseType(ctx context.Context, exerciseType models.ExerciseType) (models.ExerciseType, error) {
	if m.createTypeFn != nil {
		return m.createTypeFn(ctx, exerciseType)
	}
	return exerciseType, nil
}

func (m *mockActivityRepository) GetExerciseType(ctx context.Context, id int64) (models.ExerciseType, error) {
	if m.getTypeFn != nil {
		return m.getTypeFn(ctx, id)
	}
	return models.ExerciseType{ID: id}, nil
}

func (m *mockActivityRepository) ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error) {
	if m.listTypesFn != nil {
		return m.listTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockActivityRepository) CreateExercise(ctx context.Context, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	if m.createExerciseFn != nil {
		return m.createExerciseFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockActivityRepository) GetExercise(ctx context.Context, id int64) (models.ExerciseEntry, error) {
	if m.getExerciseFn != nil {
		return m.getExerciseFn(ctx, id)
	}
	return models.ExerciseEntry{ID: id}, nil
}

func (m *mockActivityRepository) ListExercises(ctx context.Context, filter models.ActivityFilter) ([]models.ExerciseEntry, error) {
	if m.listExercisesFn != nil {
		return m.listExercisesFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockActivityRepository) DeleteExercise(ctx context.Context, id int64) error {
	if m.deleteExerciseFn != nil {
		return m.deleteExerciseFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.IntegrationRepository
// ─────────────────────────────────────────────

type mockIntegrationRepository struct {
	saveFn         func(ctx context.Context, integration models.HealthIntegration) (models.HealthIntegration, error)
	getFn          func(ctx context.Context, id int64) (models.HealthIntegration, error)
	listFn         func(ctx context.Context, userID int64) ([]models.HealthIntegration, error)
	listAllFn      func(ctx context.Context) ([]models.HealthIntegration, error)
	updateTokensFn func(ctx context.Context, integration models.HealthIntegration) error
	markSyncedFn   func(ctx context.Context, id int64, at time.Time) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockIntegrationRepository) SaveIntegration(ctx context.Context, integration models.HealthIntegration) (models.HealthIntegration, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, integration)
	}
	return integration, nil
}

func (m *mockIntegrationRepository) GetIntegration(ctx context.Context, id int64) (models.HealthIntegration, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.HealthIntegration{ID: id}, nil
}

func (m *mockIntegrationRepository) ListIntegrations(ctx context.Context, userID int64) ([]models.HealthIntegration, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockIntegrationRepository) ListAllIntegrations(ctx context.Context) ([]models.HealthIntegration, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockIntegrationRepository) UpdateIntegrationTokens(ctx context.Context, integration models.HealthIntegration) error {
	if m.updateTokensFn != nil {
		return m.updateTokensFn(ctx, integration)
	}
	return nil
}

func (m *mockIntegrationRepository) MarkIntegrationSynced(ctx context.Context, id int64, at time.Time) error {
	if m.markSyncedFn != nil {
		return m.markSyncedFn(ctx, id, at)
	}
	return nil
}

func (m *mockIntegrationRepository) DeleteIntegration(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProgressRepository
// ─────────────────────────────────────────────

type mockProgressRepository struct {
	statsFn  func(ctx context.Context, nutritionistID int64, from, to models.Date) ([]models.ClientStats, error)
	latestFn func(ctx context.Context, userIDs []int64, from, to models.Date) (map[int64]models.Meal, error)
}

func (m *mockProgressRepository) ClientStats(ctx context.Context, nutritionistID int64, from, to models.Date) ([]models.ClientStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, nutritionistID, from, to)
	}
	return nil, nil
}

func (m *mockProgressRepository) LatestMeals(ctx context.Context, userIDs []int64, from, to models.Date) (map[int64]models.Meal, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, userIDs, from, to)
	}
	return map[int64]models.Meal{}, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.HealthProvider
// ─────────────────────────────────────────────

type mockHealthProvider struct {
	dailyStepsFn func(ctx context.Context, token *oauth2.Token, date models.Date) (models.StepCount, *oauth2.Token, error)
}

func (m *mockHealthProvider) DailySteps(ctx context.Context, token *oauth2.Token, date models.Date) (models.StepCount, *oauth2.Token, error) {
	if m.dailyStepsFn != nil {
		return m.dailyStepsFn(ctx, token, date)
	}
	return models.StepCount{Date: date}, token, nil
}
