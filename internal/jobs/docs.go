// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level precision.
//
// # Available Jobs
//
// RevenueReportJob runs the calculate-revenue query on a schedule
// (REVENUE_REPORT_CRON, hourly by default) and logs the result.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(revenueHandler, cfg.RevenueReportCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job; StartAll and StopAll become no-ops.
package jobs
