package jobs

import (
	"fmt"
	"log/slog"

	"packnow/internal/core/application/usecases/commands"
	"packnow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	packerAssignmentJob *PackerAssignmentJob
	lowStockAlertJob    *LowStockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignPackerHandler commands.AssignPackerCommandHandler,
	lowStockHandler queries.GetLowStockPackersQueryHandler,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		packerAssignmentJob: NewPackerAssignmentJob(assignPackerHandler, logger),
		lowStockAlertJob:    NewLowStockAlertJob(lowStockHandler, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.packerAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start packer assignment job: %w", err)
	}

	if err := jm.lowStockAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.packerAssignmentJob.Stop()
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
	jm.packerAssignmentJob.Stop()
}
