package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderTotalsJob periodically reports order counts per status.
// Runs at the top of every minute and writes the totals to the log,
// giving operators a heartbeat of order intake versus claims.
type OrderTotalsJob struct {
	handler queries.GetOrderTotalsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderTotalsJob creates a new job for reporting order totals.
// Uses GetOrderTotalsQueryHandler to count stored orders every minute.
func NewOrderTotalsJob(handler queries.GetOrderTotalsQueryHandler, logger *slog.Logger) *OrderTotalsJob {
	return &OrderTotalsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_totals_job"),
	}
}

// Start begins the order totals job to run every minute.
func (j *OrderTotalsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderTotalsQuery()

		totals, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order totals job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(totals)*2)
		for _, total := range totals {
			attrs = append(attrs, total.Status.String(), total.Count)
		}
		j.logger.InfoContext(ctx, "Order totals", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order totals job started (running every minute)")
	return nil
}

// Stop stops the order totals job.
func (j *OrderTotalsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order totals job stopped")
}
