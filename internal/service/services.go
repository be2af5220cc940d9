package service

import (
	"github.com/ralona/nutritracker/internal/adapter"
	"github.com/ralona/nutritracker/internal/cache"
	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/crypto"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/validators"
)

type Services struct {
	AuthService        AuthService
	InvitationService  InvitationService
	AccessGate         AccessGate
	MealService        MealService
	CommentService     CommentService
	MealPlanService    MealPlanService
	ActivityService    ActivityService
	IntegrationService IntegrationService
	ProgressService    ProgressService
	AppInfoService     AppInfoService
}

// NewServices wires every service over the given storages. summaryCache may
// be nil (caching disabled) and so may provider (sync disabled).
func NewServices(
	storages *store.Storages,
	summaryCache *cache.Client,
	provider adapter.HealthProvider,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher()
	tokens := crypto.NewTokenGenerator()
	validator := validators.NewValidator()
	gate := NewAccessGate(storages.UserRepository, logger)

	meals := NewMealValidationService(validator).
		Wrap(NewMealService(storages.MealRepository, gate, summaryCache, logger))

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.SessionRepository,
			hasher, tokens, validator, cfg.App, logger),
		InvitationService: NewInvitationService(storages.UserRepository, storages.SessionRepository,
			hasher, tokens, validator, summaryCache, cfg.App, logger),
		AccessGate:  gate,
		MealService: meals,
		CommentService: NewCommentService(storages.CommentRepository, storages.MealRepository,
			gate, validator, summaryCache, logger),
		MealPlanService: NewMealPlanService(storages.MealPlanRepository, gate, validator, logger),
		ActivityService: NewActivityService(storages.ActivityRepository, gate, validator, logger),
		IntegrationService: NewIntegrationService(storages.IntegrationRepository, storages.ActivityRepository,
			provider, validator, logger),
		ProgressService: NewProgressService(storages.ProgressRepository, summaryCache, cfg.Storage.Cache.SummaryTTL, logger),
		AppInfoService:  appInfo,
	}, nil
}
