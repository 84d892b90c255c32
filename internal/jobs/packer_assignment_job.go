package jobs

import (
	"context"
	"errors"
	"log/slog"

	"packnow/internal/core/application/usecases/commands"
	"packnow/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// PackerAssignmentJob manages the scheduled dispatch of packers to orders.
// Runs every second to match pending orders with available packers.
type PackerAssignmentJob struct {
	handler commands.AssignPackerCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPackerAssignmentJob creates a new job for dispatching packers.
// Uses AssignPackerCommandHandler to process packer assignments every second.
func NewPackerAssignmentJob(handler commands.AssignPackerCommandHandler, logger *slog.Logger) *PackerAssignmentJob {
	return &PackerAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "packer_assignment_job"),
	}
}

// Start begins the packer assignment job to run every second.
func (j *PackerAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPackerCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) &&
				!errors.Is(err, commands.ErrNoAvailablePackersFound) &&
				!errors.Is(err, services.ErrPackerNotFound) {
				j.logger.ErrorContext(ctx, "Packer assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Packer assignment job started (running every second)")
	return nil
}

// Stop stops the packer assignment job.
func (j *PackerAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Packer assignment job stopped")
}
