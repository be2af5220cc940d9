package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)
	resolveSessionFn func(ctx context.Context, sessionID string) (models.User, error)
	logoutFn         func(ctx context.Context, sessionID string) error
	purgeFn          func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	return m.resolveSessionFn(ctx, sessionID)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFn(ctx, sessionID)
}

func (m *mockAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return m.purgeFn(ctx)
}

type mockInvitationService struct {
	createFn   func(ctx context.Context, actor models.Actor, req models.InvitationRequest) (models.Invitation, error)
	verifyFn   func(ctx context.Context, token string) (models.User, error)
	activateFn func(ctx context.Context, token string, req models.ActivationRequest) (models.User, models.Session, error)
}

func (m *mockInvitationService) Create(ctx context.Context, actor models.Actor, req models.InvitationRequest) (models.Invitation, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockInvitationService) Verify(ctx context.Context, token string) (models.User, error) {
	return m.verifyFn(ctx, token)
}

func (m *mockInvitationService) Activate(ctx context.Context, token string, req models.ActivationRequest) (models.User, models.Session, error) {
	return m.activateFn(ctx, token, req)
}

type mockMealService struct {
	createFn func(ctx context.Context, actor models.Actor, meal models.Meal) (models.Meal, error)
	getFn    func(ctx context.Context, actor models.Actor, id int64) (models.Meal, error)
	listFn   func(ctx context.Context, actor models.Actor, filter models.MealFilter) ([]models.Meal, error)
	dayFn    func(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DayMeals, error)
	totalsFn func(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DailyTotals, error)
	updateFn func(ctx context.Context, actor models.Actor, update models.MealUpdate) (models.Meal, error)
	deleteFn func(ctx context.Context, actor models.Actor, id int64) error
}

func (m *mockMealService) Create(ctx context.Context, actor models.Actor, meal models.Meal) (models.Meal, error) {
	return m.createFn(ctx, actor, meal)
}

func (m *mockMealService) Get(ctx context.Context, actor models.Actor, id int64) (models.Meal, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockMealService) List(ctx context.Context, actor models.Actor, filter models.MealFilter) ([]models.Meal, error) {
	return m.listFn(ctx, actor, filter)
}

func (m *mockMealService) Day(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DayMeals, error) {
	return m.dayFn(ctx, actor, userID, date)
}

func (m *mockMealService) Totals(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DailyTotals, error) {
	return m.totalsFn(ctx, actor, userID, date)
}

func (m *mockMealService) Update(ctx context.Context, actor models.Actor, update models.MealUpdate) (models.Meal, error) {
	return m.updateFn(ctx, actor, update)
}

func (m *mockMealService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	return m.deleteFn(ctx, actor, id)
}

type mockCommentService struct {
	createFn       func(ctx context.Context, actor models.Actor, mealID int64, req models.CommentRequest) (models.Comment, error)
	listFn         func(ctx context.Context, actor models.Actor, mealID int64) ([]models.Comment, error)
	markReadFn     func(ctx context.Context, actor models.Actor, commentID int64) error
	markMealReadFn func(ctx context.Context, actor models.Actor, mealID int64) (int64, error)
}

func (m *mockCommentService) Create(ctx context.Context, actor models.Actor, mealID int64, req models.CommentRequest) (models.Comment, error) {
	return m.createFn(ctx, actor, mealID, req)
}

func (m *mockCommentService) List(ctx context.Context, actor models.Actor, mealID int64) ([]models.Comment, error) {
	return m.listFn(ctx, actor, mealID)
}

func (m *mockCommentService) MarkRead(ctx context.Context, actor models.Actor, commentID int64) error {
	return m.markReadFn(ctx, actor, commentID)
}

func (m *mockCommentService) MarkMealRead(ctx context.Context, actor models.Actor, mealID int64) (int64, error) {
	return m.markMealReadFn(ctx, actor, mealID)
}

type mockMealPlanService struct {
	createFn  func(ctx context.Context, actor models.Actor, plan models.MealPlan) (models.MealPlan, error)
	getFn     func(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error)
	listFn    func(ctx context.Context, actor models.Actor, filter models.MealPlanFilter) ([]models.MealPlan, error)
	publishFn func(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error)
	deleteFn  func(ctx context.Context, actor models.Actor, id int64) error
}

func (m *mockMealPlanService) Create(ctx context.Context, actor models.Actor, plan models.MealPlan) (models.MealPlan, error) {
	return m.createFn(ctx, actor, plan)
}

func (m *mockMealPlanService) Get(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockMealPlanService) List(ctx context.Context, actor models.Actor, filter models.MealPlanFilter) ([]models.MealPlan, error) {
	return m.listFn(ctx, actor, filter)
}

func (m *mockMealPlanService) Publish(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error) {
	return m.publishFn(ctx, actor, id)
}

func (m *mockMealPlanService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	return m.deleteFn(ctx, actor, id)
}

type mockActivityService struct {
	recordStepsFn        func(ctx context.Context, actor models.Actor, activity models.PhysicalActivity) (models.PhysicalActivity, error)
	listActivitiesFn     func(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.PhysicalActivity, error)
	createExerciseTypeFn func(ctx context.Context, actor models.Actor, exerciseType models.ExerciseType) (models.ExerciseType, error)
	listExerciseTypesFn  func(ctx context.Context) ([]models.ExerciseType, error)
	logExerciseFn        func(ctx context.Context, actor models.Actor, entry models.ExerciseEntry) (models.ExerciseEntry, error)
	listExercisesFn      func(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.ExerciseEntry, error)
	deleteExerciseFn     func(ctx context.Context, actor models.Actor, id int64) error
}

func (m *mockActivityService) RecordSteps(ctx context.Context, actor models.Actor, activity models.PhysicalActivity) (models.PhysicalActivity, error) {
	return m.recordStepsFn(ctx, actor, activity)
}

func (m *mockActivityService) ListActivities(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.PhysicalActivity, error) {
	return m.listActivitiesFn(ctx, actor, filter)
}

func (m *mockActivityService) CreateExerciseType(ctx context.Context, actor models.Actor, exerciseType models.ExerciseType) (models.ExerciseType, error) {
	return m.createExerciseTypeFn(ctx, actor, exerciseType)
}

func (m *mockActivityService) ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error) {
	return m.listExerciseTypesFn(ctx)
}

func (m *mockActivityService) LogExercise(ctx context.Context, actor models.Actor, entry models.ExerciseEntry) (models.ExerciseEntry, error) {
	return m.logExerciseFn(ctx, actor, entry)
}

func (m *mockActivityService) ListExercises(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.ExerciseEntry, error) {
	return m.listExercisesFn(ctx, actor, filter)
}

func (m *mockActivityService) DeleteExercise(ctx context.Context, actor models.Actor, id int64) error {
	return m.deleteExerciseFn(ctx, actor, id)
}

type mockIntegrationService struct {
	connectFn    func(ctx context.Context, actor models.Actor, integration models.HealthIntegration) (models.HealthIntegration, error)
	listFn       func(ctx context.Context, actor models.Actor) ([]models.HealthIntegration, error)
	disconnectFn func(ctx context.Context, actor models.Actor, id int64) error
	syncFn       func(ctx context.Context, actor models.Actor, id int64) (models.SyncResult, error)
	syncAllFn    func(ctx context.Context) error
}

func (m *mockIntegrationService) Connect(ctx context.Context, actor models.Actor, integration models.HealthIntegration) (models.HealthIntegration, error) {
	return m.connectFn(ctx, actor, integration)
}

func (m *mockIntegrationService) List(ctx context.Context, actor models.Actor) ([]models.HealthIntegration, error) {
	return m.listFn(ctx, actor)
}

func (m *mockIntegrationService) Disconnect(ctx context.Context, actor models.Actor, id int64) error {
	return m.disconnectFn(ctx, actor, id)
}

func (m *mockIntegrationService) Sync(ctx context.Context, actor models.Actor, id int64) (models.SyncResult, error) {
	return m.syncFn(ctx, actor, id)
}

func (m *mockIntegrationService) SyncAll(ctx context.Context) error {
	return m.syncAllFn(ctx)
}

type mockProgressService struct {
	summarizeFn func(ctx context.Context, actor models.Actor) ([]models.ClientSummary, error)
}

func (m *mockProgressService) Summarize(ctx context.Context, actor models.Actor) ([]models.ClientSummary, error) {
	return m.summarizeFn(ctx, actor)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSessionID = "session-123"

var (
	testClient = models.User{
		ID:             5,
		Email:          "ana@example.com",
		Name:           "Ana",
		Role:           models.RoleClient,
		NutritionistID: int64Ptr(1),
		Active:         true,
	}
	testNutritionist = models.User{
		ID:     1,
		Email:  "nora@example.com",
		Name:   "Nora",
		Role:   models.RoleNutritionist,
		Active: true,
	}
)

func int64Ptr(v int64) *int64 { return &v }

func testAppConfig() config.App {
	return config.App{
		SessionTTL:    7 * 24 * time.Hour,
		CookieHashKey: "0123456789abcdef0123456789abcdef",
	}
}

// newTestHandler builds a Handler around svcs. A nil AuthService resolves
// every session to testClient, and a nil AppInfoService reports "test".
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = sessionAs(testClient)
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, testAppConfig(), logger.Nop())
}

// sessionAs returns an AuthService resolving testSessionID to user.
func sessionAs(user models.User) *mockAuthService {
	return &mockAuthService{
		resolveSessionFn: func(_ context.Context, sessionID string) (models.User, error) {
			if sessionID != testSessionID {
				return models.User{}, service.ErrUnauthenticated
			}
			return user, nil
		},
		logoutFn: func(context.Context, string) error { return nil },
	}
}

// sessionCookie returns a cookie signed the way the handler signs it.
func sessionCookie(t *testing.T, h *Handler) *http.Cookie {
	t.Helper()
	value, err := h.cookies.Encode(sessionCookieName, testSessionID)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookieName, Value: value}
}

// serve sends a request through the full router. When authenticated is true
// the request carries a valid session cookie.
func serve(t *testing.T, h *Handler, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.AddCookie(sessionCookie(t, h))
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
