package jobs

import (
	"fmt"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/application/usecases/queries"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	paymentStatusJob *PaymentStatusJob
}

// NewJobManager creates a new job manager with all required jobs wired to
// their handlers.
func NewJobManager(
	openOrdersHandler queries.GetOpenOrdersQueryHandler,
	refreshHandler commands.RefreshPaymentStatusCommandHandler,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		paymentStatusJob: NewPaymentStatusJob(openOrdersHandler, refreshHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.paymentStatusJob.Stop()
}
