package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the session cleanup and health sync workers. A zero
// interval disables the corresponding worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SessionCleanupInterval > 0 {
		w.workers = append(w.workers, NewSessionCleanup(services.AuthService, cfg.SessionCleanupInterval, logger))
	}
	if cfg.HealthSyncInterval > 0 {
		w.workers = append(w.workers, NewHealthSync(services.IntegrationService, cfg.HealthSyncInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// runEvery calls job once per interval until ctx is cancelled. The first
// call happens after one full interval.
func runEvery(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}
