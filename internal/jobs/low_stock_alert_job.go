package jobs

import (
	"context"
	"log/slog"

	"packnow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically reports packers running low on materials.
// Runs every minute so operators can schedule restocking.
type LowStockAlertJob struct {
	handler   queries.GetLowStockPackersQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob creates a new job for low stock reporting.
// The threshold is the stock level below which a material counts as low.
func NewLowStockAlertJob(
	handler queries.GetLowStockPackersQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low stock alert job to run every minute.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetLowStockPackersQuery(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job misconfigured", "error", err)
			return
		}

		packers, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", err)
			return
		}

		for _, p := range packers {
			j.logger.WarnContext(ctx, "Packer inventory below restock threshold",
				"packer_id", p.ID.String(),
				"packer_name", p.Name,
				"low_items", p.LowItems,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every minute)")
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
