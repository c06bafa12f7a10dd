package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultRevenueReportSchedule fires at the top of every hour.
const DefaultRevenueReportSchedule = "0 0 * * * *"

// RevenueCalculator computes revenue over paid orders.
type RevenueCalculator interface {
	Handle(ctx context.Context, query queries.CalculateRevenueQuery) (queries.CalculateRevenueQueryResponse, error)
}

// RevenueReportJob periodically logs the revenue collected from paid orders.
type RevenueReportJob struct {
	handler  RevenueCalculator
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRevenueReportJob creates the job. schedule is a six-field cron
// expression (with seconds).
func NewRevenueReportJob(handler RevenueCalculator, schedule string, logger *slog.Logger) *RevenueReportJob {
	return &RevenueReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "revenue_report_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *RevenueReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Revenue report job started", "schedule", j.schedule)
	return nil
}

// Run computes and logs the revenue once.
func (j *RevenueReportJob) Run(ctx context.Context) {
	resp, err := j.handler.Handle(ctx, queries.NewCalculateRevenueQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Revenue report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Revenue report",
		"revenue", resp.String(),
		"paid_orders", resp.PaidOrders,
	)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *RevenueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Revenue report job stopped")
}
