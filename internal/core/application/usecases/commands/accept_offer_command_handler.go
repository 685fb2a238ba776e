package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/professional"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AcceptOfferCommandHandler implements the first-acceptance-wins claim
// protocol.
//
// Preconditions run in order: the caller must be an active professional
// (Forbidden otherwise), the offer must exist, belong to the caller, and
// still be claimable, and the job must still be requested (Conflict
// carrying the status otherwise). Soft preconditions (compliance,
// verification, distance) accumulate into one Conflict so the caller sees
// every gap at once.
//
// The assignment insert is the serialization point: its job-id uniqueness
// constraint decides concurrent claims, and the loser observes a Conflict
// translated from the store's duplicate-key error. Losing offers on other
// candidates are swept to superseded later, not here.
type AcceptOfferCommandHandler struct {
	uowFactory ClaimUoWFactory
	compliance ports.ComplianceOracle
	notifier   Notifier
	logger     *slog.Logger
}

// NewAcceptOfferCommandHandler creates a handler for claim operations.
func NewAcceptOfferCommandHandler(
	uowFactory ClaimUoWFactory,
	compliance ports.ComplianceOracle,
	notifier Notifier,
	logger *slog.Logger,
) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		compliance: compliance,
		notifier:   notifier,
		logger:     logger.With("component", "accept_offer"),
	}
}

// Handle processes the claim command.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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

	pro, err := uow.ProfessionalRepository().Get(ctx, cmd.ProID())
	if err != nil {
		return err
	}
	if pro.AccountType() != professional.RolePro || !pro.IsActivePro() {
		return errs.NewForbiddenError("caller is not an active professional")
	}

	offerRepo := uow.OfferRepository()
	claimedOffer, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}
	if !claimedOffer.IsOwnedBy(cmd.ProID()) {
		return errs.NewForbiddenError("offer belongs to another professional")
	}

	jobRepo := uow.JobRepository()
	claimedJob, err := jobRepo.Get(ctx, claimedOffer.JobID())
	if err != nil {
		return err
	}
	if claimedJob.Status() != job.StatusRequested {
		return errs.NewConflictError(
			"job is not open", "job status is "+claimedJob.Status().String())
	}

	records, err := h.compliance.GetCompliance(ctx, cmd.ProID(), []string{claimedJob.ServiceCode()})
	if err != nil {
		return errs.NewUpstreamError("compliance oracle", err)
	}

	reasons := services.NewClaimPolicy().Evaluate(
		claimedJob, pro, records, cmd.Location(), cmd.MaxDistanceKm())
	if len(reasons) > 0 {
		return errs.NewConflictError("claim preconditions failed", reasons...)
	}

	now := time.Now()
	if err = claimedOffer.Accept(now); err != nil {
		return err
	}

	// The serialization point: the store's unique index on job id decides
	// the race, and the repository translates the duplicate-key loss to
	// a Conflict.
	assignment, err := offer.NewAssignment(claimedJob.ID(), claimedOffer.ID(), cmd.ProID(), now)
	if err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Add(ctx, assignment); err != nil {
		return err
	}

	if err = claimedJob.Assign(cmd.ProID()); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, claimedOffer); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, claimedJob); err != nil {
		return err
	}

	event, err := job.NewEvent(
		claimedJob.ID(), cmd.ProID(), job.StatusAssigned.String(), cmd.Location(),
		map[string]string{job.MetaPreviousStatus: job.StatusRequested.String()}, now)
	if err != nil {
		return err
	}
	if err = jobRepo.AddEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, notifications.Event{
		UserID:   claimedJob.CustomerID(),
		Type:     notification.TypeJobAssigned,
		Title:    "Your job was claimed",
		Body:     pro.Name() + " accepted your " + claimedJob.ServiceCode() + " job",
		Channels: []notification.Channel{notification.ChannelPush, notification.ChannelInApp},
		Data:     map[string]string{"job_id": claimedJob.ID().String()},
	})

	return nil
}
