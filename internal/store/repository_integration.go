package store

import (
	"context"
	"time"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/models"
)

type integrationRepository struct {
	*DB
	logger *logger.Logger
}

// NewIntegrationRepository constructs an [IntegrationRepository] over the
// "health_integrations" table.
func NewIntegrationRepository(db *DB, logger *logger.Logger) IntegrationRepository {
	return &integrationRepository{
		DB:     db,
		logger: logger,
	}
}

func scanIntegration(row rowScanner, h *models.HealthIntegration) error {
	return row.Scan(
		&h.ID,
		&h.UserID,
		&h.Provider,
		&h.AccessToken,
		&h.RefreshToken,
		&h.TokenExpiry,
		&h.LastSyncedAt,
		&h.CreatedAt,
	)
}

func (i *integrationRepository) SaveIntegration(ctx context.Context, integration models.HealthIntegration) (models.HealthIntegration, error) {
	log := logger.FromContext(ctx)

	var saved models.HealthIntegration
	row := i.DB.QueryRowContext(ctx, saveIntegration,
		integration.UserID,
		integration.Provider,
		integration.AccessToken,
		integration.RefreshToken,
		integration.TokenExpiry,
	)
	if err := scanIntegration(row, &saved); err != nil {
		log.Err(err).
			Str("func", "integrationRepository.SaveIntegration").
			Int64("user_id", integration.UserID).
			Str("provider", integration.Provider).
			Msg("failed to save integration")
		return models.HealthIntegration{}, classifyError(err, ErrAlreadyExists, ErrExecutingQuery)
	}

	return saved, nil
}

func (i *integrationRepository) GetIntegration(ctx context.Context, id int64) (models.HealthIntegration, error) {
	var integration models.HealthIntegration
	err := queryOne(ctx, i.DB, "integrationRepository.GetIntegration", func(row rowScanner) error {
		return scanIntegration(row, &integration)
	}, getIntegration, id)

	return integration, err
}

func (i *integrationRepository) ListIntegrations(ctx context.Context, userID int64) ([]models.HealthIntegration, error) {
	return queryList(ctx, i.DB, "integrationRepository.ListIntegrations", scanIntegration, listIntegrations, userID)
}

func (i *integrationRepository) ListAllIntegrations(ctx context.Context) ([]models.HealthIntegration, error) {
	return queryList(ctx, i.DB, "integrationRepository.ListAllIntegrations", scanIntegration, listAllIntegrations)
}

// UpdateIntegrationTokens stores refreshed OAuth tokens.
func (i *integrationRepository) UpdateIntegrationTokens(ctx context.Context, integration models.HealthIntegration) error {
	return i.DB.execOne(ctx, "integrationRepository.UpdateIntegrationTokens", updateIntegrationTokens,
		integration.ID, integration.AccessToken, integration.RefreshToken, integration.TokenExpiry)
}

func (i *integrationRepository) MarkIntegrationSynced(ctx context.Context, id int64, at time.Time) error {
	return i.DB.execOne(ctx, "integrationRepository.MarkIntegrationSynced", markIntegrationSynced, id, at)
}

func (i *integrationRepository) DeleteIntegration(ctx context.Context, id int64) error {
	return i.DB.execOne(ctx, "integrationRepository.DeleteIntegration", deleteIntegration, id)
}
