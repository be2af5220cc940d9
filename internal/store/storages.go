package store

import "github.com/ralona/nutritracker/internal/logger"

// Storages bundles every repository of the server.
type Storages struct {
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	MealRepository        MealRepository
	CommentRepository     CommentRepository
	MealPlanRepository    MealPlanRepository
	ActivityRepository    ActivityRepository
	IntegrationRepository IntegrationRepository
	ProgressRepository    ProgressRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		SessionRepository:     NewSessionRepository(db, logger),
		MealRepository:        NewMealRepository(db, logger),
		CommentRepository:     NewCommentRepository(db, logger),
		MealPlanRepository:    NewMealPlanRepository(db, logger),
		ActivityRepository:    NewActivityRepository(db, logger),
		IntegrationRepository: NewIntegrationRepository(db, logger),
		ProgressRepository:    NewProgressRepository(db, logger),
	}
}
