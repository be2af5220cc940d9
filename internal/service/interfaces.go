package service

import (
	"context"

	"github.com/ralona/nutritracker/models"
)

// AuthService implements self-registration, login and cookie sessions.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)

	// ResolveSession returns the user bound to sessionID. Unknown and expired
	// sessions yield ErrUnauthenticated.
	ResolveSession(ctx context.Context, sessionID string) (models.User, error)
	Logout(ctx context.Context, sessionID string) error

	// PurgeExpiredSessions deletes every session past its expiry and returns
	// how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// InvitationService issues, checks and redeems client invitations.
type InvitationService interface {
	Create(ctx context.Context, actor models.Actor, req models.InvitationRequest) (models.Invitation, error)
	Verify(ctx context.Context, token string) (models.User, error)

	// Activate sets the password of the invited user and opens a session.
	// A token can be redeemed once.
	Activate(ctx context.Context, token string, req models.ActivationRequest) (models.User, models.Session, error)
}

// AccessGate decides whether an actor may touch records owned by a user.
type AccessGate interface {
	// Authorize returns the owner when actor is the owner or the owner's
	// nutritionist, ErrForbidden otherwise.
	Authorize(ctx context.Context, actor models.Actor, ownerID int64) (models.User, error)
}

type MealService interface {
	Create(ctx context.Context, actor models.Actor, meal models.Meal) (models.Meal, error)
	Get(ctx context.Context, actor models.Actor, id int64) (models.Meal, error)
	List(ctx context.Context, actor models.Actor, filter models.MealFilter) ([]models.Meal, error)
	Day(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DayMeals, error)
	Totals(ctx context.Context, actor models.Actor, userID int64, date models.Date) (models.DailyTotals, error)
	Update(ctx context.Context, actor models.Actor, update models.MealUpdate) (models.Meal, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
}

type CommentService interface {
	Create(ctx context.Context, actor models.Actor, mealID int64, req models.CommentRequest) (models.Comment, error)
	List(ctx context.Context, actor models.Actor, mealID int64) ([]models.Comment, error)
	MarkRead(ctx context.Context, actor models.Actor, commentID int64) error
	MarkMealRead(ctx context.Context, actor models.Actor, mealID int64) (int64, error)
}

type MealPlanService interface {
	Create(ctx context.Context, actor models.Actor, plan models.MealPlan) (models.MealPlan, error)
	Get(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error)
	List(ctx context.Context, actor models.Actor, filter models.MealPlanFilter) ([]models.MealPlan, error)
	Publish(ctx context.Context, actor models.Actor, id int64) (models.MealPlan, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
}

type ActivityService interface {
	RecordSteps(ctx context.Context, actor models.Actor, activity models.PhysicalActivity) (models.PhysicalActivity, error)
	ListActivities(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.PhysicalActivity, error)

	CreateExerciseType(ctx context.Context, actor models.Actor, exerciseType models.ExerciseType) (models.ExerciseType, error)
	ListExerciseTypes(ctx context.Context) ([]models.ExerciseType, error)

	LogExercise(ctx context.Context, actor models.Actor, entry models.ExerciseEntry) (models.ExerciseEntry, error)
	ListExercises(ctx context.Context, actor models.Actor, filter models.ActivityFilter) ([]models.ExerciseEntry, error)
	DeleteExercise(ctx context.Context, actor models.Actor, id int64) error
}

type IntegrationService interface {
	Connect(ctx context.Context, actor models.Actor, integration models.HealthIntegration) (models.HealthIntegration, error)
	List(ctx context.Context, actor models.Actor) ([]models.HealthIntegration, error)
	Disconnect(ctx context.Context, actor models.Actor, id int64) error
	Sync(ctx context.Context, actor models.Actor, id int64) (models.SyncResult, error)

	// SyncAll synchronises every stored integration. Failures of one
	// integration do not stop the others.
	SyncAll(ctx context.Context) error
}

type ProgressService interface {
	Summarize(ctx context.Context, actor models.Actor) ([]models.ClientSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MealServiceWrapper defines middleware composition for MealService.
// Implementations wrap an existing MealService to add behavior such as
// logging or validating.
type MealServiceWrapper interface {
	Wrap(MealService) MealService // returns a decorated MealService applying additional behavior
}
