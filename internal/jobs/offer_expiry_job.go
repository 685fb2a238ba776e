package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferExpiryJob runs the offer bookkeeping sweep on a schedule.
// Claimability never depends on this job; it only settles stored statuses
// that the lazy deadline checks have already made unclaimable.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates a job that sweeps offer statuses every minute.
func NewOfferExpiryJob(handler commands.ExpireOffersCommandHandler, logger *slog.Logger) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start begins the sweep schedule.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireOffersCommand()

		if _, sweepErr := j.handler.Handle(ctx, cmd); sweepErr != nil {
			j.logger.ErrorContext(ctx, "Offer expiry sweep failed", "error", sweepErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer expiry job started (running every minute)")
	return nil
}

// Stop stops the sweep schedule.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer expiry job stopped")
}
