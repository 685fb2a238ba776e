package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// MatchPumpJob retries matching for requested jobs that have no offers yet.
// A job lands here when its initial matching found no candidates, e.g. no
// professional for the service was online at request time.
type MatchPumpJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.MatchJobCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewMatchPumpJob creates a job that re-matches unserved jobs every minute.
func NewMatchPumpJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.MatchJobCommandHandler,
	logger *slog.Logger,
) *MatchPumpJob {
	return &MatchPumpJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(),
		logger:     logger.With("component", "match_pump_job"),
	}
}

// Start begins the pump schedule.
func (j *MatchPumpJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.pump(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Match pump job started (running every minute)")
	return nil
}

// Stop stops the pump schedule.
func (j *MatchPumpJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Match pump job stopped")
}

// pump matches every unserved job once. Failures on one job do not block
// the rest; each gets its own transaction through the command handler.
func (j *MatchPumpJob) pump(ctx context.Context) {
	unserved, err := j.uowFactory.Create().JobRepository().GetAllRequestedWithoutOffers(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Match pump failed to list unserved jobs", "error", err)
		return
	}

	for _, unservedJob := range unserved {
		cmd, cmdErr := commands.NewMatchJobCommand(unservedJob.ID(), 0)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Match pump built invalid command",
				"job_id", unservedJob.ID().String(), "error", cmdErr)
			continue
		}

		result, matchErr := j.handler.Handle(ctx, cmd)
		if matchErr != nil {
			j.logger.ErrorContext(ctx, "Match pump failed to match job",
				"job_id", unservedJob.ID().String(), "error", matchErr)
			continue
		}

		if result.MatchedCount > 0 {
			j.logger.InfoContext(ctx, "Match pump created offers",
				"job_id", unservedJob.ID().String(), "matched_count", result.MatchedCount)
		}
	}
}
