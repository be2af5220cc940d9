package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMealPlanService(plans *mockMealPlanRepository, gate *mockGate) *mealPlanService {
	return &mealPlanService{
		mealPlanRepository: plans,
		gate:               gate,
		validator:          validators.NewValidator(),
		logger:             logger.Nop(),
	}
}

func validPlan(t *testing.T) models.MealPlan {
	t.Helper()
	return models.MealPlan{
		UserID:    5,
		WeekStart: mustDate(t, "2026-03-09"),
		WeekEnd:   mustDate(t, "2026-03-15"),
		Active:    true,
		Details: []models.MealPlanDetail{
			{Day: 1, MealType: models.Breakfast, Description: "Avena"},
		},
	}
}

func TestMealPlanService_Create_SetsNutritionist(t *testing.T) {
	plans := &mockMealPlanRepository{
		createFn: func(_ context.Context, p models.MealPlan) (models.MealPlan, error) {
			assert.Equal(t, int64(1), p.NutritionistID)
			p.ID = 10
			return p, nil
		},
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	plan, err := svc.Create(context.Background(), nutritionistActor, validPlan(t))

	require.NoError(t, err)
	assert.Equal(t, int64(10), plan.ID)
}

func TestMealPlanService_Create_AlwaysActive(t *testing.T) {
	var stored models.MealPlan
	plans := &mockMealPlanRepository{
		createFn: func(_ context.Context, p models.MealPlan) (models.MealPlan, error) {
			stored = p
			p.ID = 11
			return p, nil
		},
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	// request body without "active"
	plan := validPlan(t)
	plan.Active = false

	created, err := svc.Create(context.Background(), nutritionistActor, plan)

	require.NoError(t, err)
	assert.True(t, stored.Active, "repository must receive an active plan so the previous one is replaced")
	assert.True(t, created.Active)
}

func TestMealPlanService_Create_ConcurrentActivePlan(t *testing.T) {
	plans := &mockMealPlanRepository{
		createFn: func(context.Context, models.MealPlan) (models.MealPlan, error) {
			return models.MealPlan{}, fmt.Errorf("%w: duplicate key", store.ErrAlreadyExists)
		},
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	_, err := svc.Create(context.Background(), nutritionistActor, validPlan(t))

	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMealPlanService_Create_ClientForbidden(t *testing.T) {
	svc := newTestMealPlanService(&mockMealPlanRepository{}, &mockGate{})

	_, err := svc.Create(context.Background(), clientActor, validPlan(t))

	require.ErrorIs(t, err, ErrForbidden)
}

func TestMealPlanService_Create_InvalidDetail(t *testing.T) {
	svc := newTestMealPlanService(&mockMealPlanRepository{}, &mockGate{})
	plan := validPlan(t)
	plan.Details[0].Day = 8

	_, err := svc.Create(context.Background(), nutritionistActor, plan)

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "details[0].day", vErr.Fields[0].Field)
}

func TestMealPlanService_Get_DraftHiddenFromClient(t *testing.T) {
	plans := &mockMealPlanRepository{
		getFn: func(_ context.Context, id int64) (models.MealPlan, error) {
			return models.MealPlan{ID: id, UserID: 5, Published: false}, nil
		},
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	_, err := svc.Get(context.Background(), clientActor, 10)
	require.ErrorIs(t, err, ErrNotFound)

	plan, err := svc.Get(context.Background(), nutritionistActor, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), plan.ID)
}

func TestMealPlanService_List_PublishedOnlyForClient(t *testing.T) {
	var got []models.MealPlanFilter
	plans := &mockMealPlanRepository{
		listFn: func(_ context.Context, f models.MealPlanFilter) ([]models.MealPlan, error) {
			got = append(got, f)
			return nil, nil
		},
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	_, err := svc.List(context.Background(), clientActor, models.MealPlanFilter{})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), nutritionistActor, models.MealPlanFilter{UserID: 5})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), clientActor, models.MealPlanFilter{ActiveOnly: true, PublishedOnly: false})
	require.NoError(t, err)

	assert.Equal(t, []models.MealPlanFilter{
		{UserID: 5, PublishedOnly: true},
		{UserID: 5, PublishedOnly: false},
		{UserID: 5, PublishedOnly: true, ActiveOnly: true},
	}, got)
}

func TestMealPlanService_Publish(t *testing.T) {
	published := false
	plans := &mockMealPlanRepository{
		getFn:     func(_ context.Context, id int64) (models.MealPlan, error) { return models.MealPlan{ID: id, UserID: 5}, nil },
		publishFn: func(context.Context, int64) error { published = true; return nil },
	}
	svc := newTestMealPlanService(plans, &mockGate{})

	plan, err := svc.Publish(context.Background(), nutritionistActor, 10)

	require.NoError(t, err)
	assert.True(t, published)
	assert.True(t, plan.Published)
}

func TestMealPlanService_Delete_ClientForbidden(t *testing.T) {
	svc := newTestMealPlanService(&mockMealPlanRepository{}, &mockGate{})

	err := svc.Delete(context.Background(), clientActor, 10)

	require.ErrorIs(t, err, ErrForbidden)
}
