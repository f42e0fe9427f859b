package jobs

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// QueueMonitorJob periodically logs the state of the order queue.
// Runs every minute so operators can follow kitchen load from the logs.
type QueueMonitorJob struct {
	handler queries.GetQueueStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueMonitorJob creates a new job for monitoring the order queue.
func NewQueueMonitorJob(handler queries.GetQueueStatusQueryHandler, logger *slog.Logger) *QueueMonitorJob {
	return &QueueMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "queue_monitor_job"),
	}
}

// Start begins the queue monitor job to run every minute.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetQueueStatusQuery()

		status, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue monitor job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Queue status",
			"pendingOrders", status.PendingCount,
			"avgWaitMinutes", status.AvgWaitMinutes,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue monitor job started (running every minute)")
	return nil
}

// Stop stops the queue monitor job.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue monitor job stopped")
}
