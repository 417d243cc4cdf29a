package jobs

import (
	"context"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSequenceCleanupSchedule runs the cleanup daily at 03:30:00.
const DefaultSequenceCleanupSchedule = "0 30 3 * * *"

// SequenceCleanupJob deletes order number day counters that have not been
// used for longer than the retention period.
type SequenceCleanupJob struct {
	handler   commands.PurgeOrderNumberSequencesCommandHandler
	retention time.Duration
	schedule  string
	clock     func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSequenceCleanupJob creates the job. An empty schedule uses
// DefaultSequenceCleanupSchedule. Schedules have a leading seconds field.
func NewSequenceCleanupJob(
	handler commands.PurgeOrderNumberSequencesCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *SequenceCleanupJob {
	if schedule == "" {
		schedule = DefaultSequenceCleanupSchedule
	}
	return &SequenceCleanupJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		clock:     time.Now,
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:    logger.With("component", "sequence_cleanup_job"),
	}
}

// Start schedules the cleanup.
func (j *SequenceCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sequence cleanup job started",
		"schedule", j.schedule,
		"retention", j.retention.String(),
	)
	return nil
}

// RunOnce purges counters last used before now minus the retention.
// It returns the number of removed counters; failures are logged.
func (j *SequenceCleanupJob) RunOnce(ctx context.Context) int64 {
	cmd, err := commands.NewPurgeOrderNumberSequencesCommand(j.clock().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Sequence cleanup job failed", "error", err)
		return 0
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Sequence cleanup job failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Purged order number sequences", "removed", removed, "cutoff", cmd.Cutoff())
	}
	return removed
}

// Stop stops the scheduler and waits for a running cleanup to finish.
func (j *SequenceCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sequence cleanup job stopped")
}
