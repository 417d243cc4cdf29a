// Package jobs provides scheduled background tasks for the sales order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping of the order store.
//
// # Available Jobs
//
// 1. SequenceCleanupJob - Runs daily to delete order number day counters that
// were last used before the retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeSequencesHandler, jobs.JobConfig{
//		SequenceRetention: 7 * 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field and
// are evaluated in UTC, the zone order numbers are dated in.
//
// # Error Handling
//
// A failed run is logged and retried at the next scheduled time.
package jobs
