// Package jobs provides scheduled background tasks for the fleet rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the time-based parts of the contract lifecycle.
//
// # Available Jobs
//
// 1. ContractActivationJob - Moves Pending contracts to Active once their rental period begins
// 2. OverdueDetectionJob - Moves Active contracts to Overdue once their rental period has ended
// 3. StatusSummaryJob - Logs a fleet-wide count of contracts per status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activateHandler, overdueHandler, summaryHandler, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron expressions come from configuration and use the six-field form with a
// seconds column. The passes evaluate calendar dates, so running them more
// often than their default hourly cadence only costs database reads.
//
// # Error Handling
//
// - Passes skip individual contracts that fail and keep sweeping; only systemic errors abort a pass
// - Failed job starts stop any already running jobs
package jobs
