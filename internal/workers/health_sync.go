package workers

import (
	"context"
	"errors"
	"time"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
)

// HealthSync periodically pulls step counts for every connected health
// integration.
type HealthSync struct {
	integrations service.IntegrationService
	interval     time.Duration
	logger       *logger.Logger
}

// NewHealthSync synchronises every health integration every interval.
func NewHealthSync(integrations service.IntegrationService, interval time.Duration, logger *logger.Logger) *HealthSync {
	return &HealthSync{integrations: integrations, interval: interval, logger: logger}
}

func (h *HealthSync) Run(ctx context.Context) {
	h.logger.Info().Dur("interval", h.interval).Msg("health sync worker started")
	runEvery(ctx, h.interval, h.syncAll)
	h.logger.Info().Msg("health sync worker stopped")
}

func (h *HealthSync) syncAll(ctx context.Context) {
	err := h.integrations.SyncAll(ctx)
	switch {
	case err == nil:
		h.logger.Debug().Msg("health integrations synced")
	case errors.Is(err, service.ErrIntegrationDisabled):
		h.logger.Debug().Msg("health provider not configured, sync skipped")
	default:
		h.logger.Err(err).Msg("health sync finished with errors")
	}
}
