package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"
)

// RateJobCommandHandler handles the rating of completed jobs. Only the
// job's requester may rate, only after completion, and a repeated rating
// overwrites rather than duplicates. The professional's stored rating
// average is recomputed in the same transaction.
type RateJobCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewRateJobCommandHandler creates a handler for rating operations.
func NewRateJobCommandHandler(uowFactory LifecycleUoWFactory) RateJobCommandHandler {
	return RateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h RateJobCommandHandler) Handle(ctx context.Context, cmd RateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	ratedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !ratedJob.IsCustomer(cmd.CustomerID()) {
		return errs.NewForbiddenError("only the job's requester may rate it")
	}
	if ratedJob.Status() != job.StatusCompleted {
		return errs.NewConflictError(
			"job is not completed", "job status is "+ratedJob.Status().String())
	}

	proID := *ratedJob.AssignedPro()
	rating, err := job.NewRating(cmd.JobID(), cmd.CustomerID(), proID, cmd.Score(), cmd.Comment())
	if err != nil {
		return err
	}
	if err = jobRepo.UpsertRating(ctx, rating); err != nil {
		return err
	}

	average, err := jobRepo.GetProRatingAverage(ctx, proID)
	if err != nil {
		return err
	}

	proRepo := uow.ProfessionalRepository()
	pro, err := proRepo.Get(ctx, proID)
	if err != nil {
		return err
	}
	if err = pro.UpdateRatingAverage(average); err != nil {
		return err
	}
	if err = proRepo.Update(ctx, pro); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
