package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ralona/nutritracker/internal/adapter"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
	"golang.org/x/oauth2"
)

// syncWindowDays bounds one synchronisation run, today included.
const syncWindowDays = 7

type integrationService struct {
	integrationRepository store.IntegrationRepository
	activityRepository    store.ActivityRepository
	provider              adapter.HealthProvider
	validator             validators.Validator
	now                   func() time.Time
	logger                *logger.Logger
}

// NewIntegrationService constructs an [IntegrationService]. A nil provider
// leaves integrations storable but makes every sync fail with
// ErrIntegrationDisabled.
func NewIntegrationService(integrations store.IntegrationRepository, activities store.ActivityRepository,
	provider adapter.HealthProvider, validator validators.Validator, logger *logger.Logger) IntegrationService {
	return &integrationService{
		integrationRepository: integrations,
		activityRepository:    activities,
		provider:              provider,
		validator:             validator,
		now:                   time.Now,
		logger:                logger,
	}
}

func (s *integrationService) Connect(ctx context.Context, actor models.Actor, integration models.HealthIntegration) (models.HealthIntegration, error) {
	client, ok := actor.(models.ClientActor)
	if !ok {
		return models.HealthIntegration{}, ErrForbidden
	}

	integration.UserID = client.ID
	if err := s.validator.Validate(ctx, integration); err != nil {
		return models.HealthIntegration{}, fmt.Errorf("integration validation: %w", err)
	}

	saved, err := s.integrationRepository.SaveIntegration(ctx, integration)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return models.HealthIntegration{}, ErrAlreadyExists
		}
		return models.HealthIntegration{}, fmt.Errorf("saving integration failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("integration_id", saved.ID).
		Str("provider", saved.Provider).
		Msg("health integration connected")
	return saved.Redacted(), nil
}

func (s *integrationService) List(ctx context.Context, actor models.Actor) ([]models.HealthIntegration, error) {
	client, ok := actor.(models.ClientActor)
	if !ok {
		return nil, ErrForbidden
	}

	integrations, err := s.integrationRepository.ListIntegrations(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	for i := range integrations {
		integrations[i] = integrations[i].Redacted()
	}
	return integrations, nil
}

func (s *integrationService) Disconnect(ctx context.Context, actor models.Actor, id int64) error {
	if _, err := s.ownIntegration(ctx, actor, id); err != nil {
		return err
	}

	return mapNotFound(s.integrationRepository.DeleteIntegration(ctx, id))
}

func (s *integrationService) Sync(ctx context.Context, actor models.Actor, id int64) (models.SyncResult, error) {
	if s.provider == nil {
		return models.SyncResult{}, ErrIntegrationDisabled
	}

	integration, err := s.ownIntegration(ctx, actor, id)
	if err != nil {
		return models.SyncResult{}, err
	}

	return s.sync(ctx, integration)
}

func (s *integrationService) SyncAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.provider == nil {
		return ErrIntegrationDisabled
	}

	integrations, err := s.integrationRepository.ListAllIntegrations(ctx)
	if err != nil {
		return fmt.Errorf("listing integrations failed: %w", err)
	}

	var errs error
	for _, integration := range integrations {
		if ctx.Err() != nil {
			return errors.Join(errs, ctx.Err())
		}

		result, err := s.sync(ctx, integration)
		if err != nil {
			log.Err(err).
				Str("func", "integrationService.SyncAll").
				Int64("integration_id", integration.ID).
				Msg("integration sync failed")
			errs = errors.Join(errs, err)
			continue
		}

		log.Debug().
			Int64("integration_id", integration.ID).
			Int("updated", result.Updated).
			Int("skipped", result.Skipped).
			Msg("integration synced")
	}

	return errs
}

// sync pulls the step counts from the last synchronised day (or a week
// back) up to today. A manual count stored for a day is never overwritten.
func (s *integrationService) sync(ctx context.Context, integration models.HealthIntegration) (models.SyncResult, error) {
	now := s.now()
	today := models.NewDate(now)
	result := models.SyncResult{IntegrationID: integration.ID}

	start := today.AddDays(-(syncWindowDays - 1))
	if integration.LastSyncedAt != nil {
		if last := models.NewDate(*integration.LastSyncedAt); last.After(start.Time) {
			start = last
		}
	}

	token := integrationToken(integration)
	originalAccessToken := token.AccessToken

	var syncErr error
	for day := start; !day.After(today.Time); day = day.AddDays(1) {
		count, used, err := s.provider.DailySteps(ctx, token, day)
		if used != nil {
			token = used
		}
		if err != nil {
			syncErr = fmt.Errorf("fetching steps of %s: %w", day, err)
			break
		}

		_, err = s.activityRepository.UpsertActivity(ctx, models.PhysicalActivity{
			UserID: integration.UserID,
			Date:   day,
			Steps:  count.Steps,
			Source: models.SourceIntegration,
		})
		switch {
		case errors.Is(err, store.ErrNotModified):
			result.Skipped++
		case err != nil:
			syncErr = fmt.Errorf("storing steps of %s: %w", day, err)
		default:
			result.Updated++
		}
		if syncErr != nil {
			break
		}
		result.Days++
	}

	if token.AccessToken != originalAccessToken {
		if err := s.saveTokens(ctx, integration, token); err != nil {
			syncErr = errors.Join(syncErr, err)
		}
	}

	if syncErr != nil {
		return result, syncErr
	}

	if err := s.integrationRepository.MarkIntegrationSynced(ctx, integration.ID, now); err != nil {
		return result, fmt.Errorf("marking integration synced: %w", err)
	}

	result.SyncedAt = now
	return result, nil
}

func (s *integrationService) saveTokens(ctx context.Context, integration models.HealthIntegration, token *oauth2.Token) error {
	integration.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		integration.RefreshToken = token.RefreshToken
	}
	integration.TokenExpiry = nil
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		integration.TokenExpiry = &expiry
	}

	if err := s.integrationRepository.UpdateIntegrationTokens(ctx, integration); err != nil {
		return fmt.Errorf("persisting refreshed tokens: %w", err)
	}
	return nil
}

// ownIntegration loads an integration of the calling client.
func (s *integrationService) ownIntegration(ctx context.Context, actor models.Actor, id int64) (models.HealthIntegration, error) {
	client, ok := actor.(models.ClientActor)
	if !ok {
		return models.HealthIntegration{}, ErrForbidden
	}

	integration, err := s.integrationRepository.GetIntegration(ctx, id)
	if err != nil {
		return models.HealthIntegration{}, mapNotFound(err)
	}

	if integration.UserID != client.ID {
		return models.HealthIntegration{}, ErrForbidden
	}
	return integration, nil
}

func integrationToken(integration models.HealthIntegration) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  integration.AccessToken,
		RefreshToken: integration.RefreshToken,
		TokenType:    "Bearer",
	}
	if integration.TokenExpiry != nil {
		token.Expiry = *integration.TokenExpiry
	}
	return token
}
