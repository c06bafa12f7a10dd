package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	revenueReportJob *RevenueReportJob
}

// NewJobManager creates a job manager. An empty revenueSchedule disables the
// revenue report job.
func NewJobManager(revenue RevenueCalculator, revenueSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if revenueSchedule != "" {
		jm.revenueReportJob = NewRevenueReportJob(revenue, revenueSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.revenueReportJob == nil {
		return nil
	}

	if err := jm.revenueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start revenue report job: %w", err)
	}

	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.revenueReportJob != nil {
		jm.revenueReportJob.Stop()
	}
}
