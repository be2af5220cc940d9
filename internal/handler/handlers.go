package handler

import (
	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/handler/http"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds every transport handler enabled by cfg.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
