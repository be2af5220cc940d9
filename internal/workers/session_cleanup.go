package workers

import (
	"context"
	"time"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
)

// SessionCleanup periodically deletes expired login sessions.
type SessionCleanup struct {
	auth     service.AuthService
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionCleanup purges expired sessions every interval.
func NewSessionCleanup(auth service.AuthService, interval time.Duration, logger *logger.Logger) *SessionCleanup {
	return &SessionCleanup{auth: auth, interval: interval, logger: logger}
}

func (s *SessionCleanup) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session cleanup worker started")
	runEvery(ctx, s.interval, s.purge)
	s.logger.Info().Msg("session cleanup worker stopped")
}

func (s *SessionCleanup) purge(ctx context.Context) {
	removed, err := s.auth.PurgeExpiredSessions(ctx)
	if err != nil {
		s.logger.Err(err).Msg("purging expired sessions failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired sessions purged")
	}
}
