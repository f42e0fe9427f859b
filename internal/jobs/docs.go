// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order queue.
//
// # Available Jobs
//
// 1. QueueMonitorJob - Runs every minute to log the pending backlog and the
// projected wait, giving operators a heartbeat of kitchen load without a
// metrics stack.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queueStatusHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
