package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UpdateJobStatusCommandHandler drives the job lifecycle state machine.
//
// Only the job's requester, its assigned professional, or an administrator
// may request a transition. The transition table and its payment flag side
// effects live on the aggregate; this handler adds the surrounding side
// effects applied atomically with the status write: live location capture
// on en_route/arrived by the professional and the audit event. The payment
// collaborator and notifications are told best effort after commit.
type UpdateJobStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	payment    ports.PaymentCollaborator
	notifier   Notifier
	logger     *slog.Logger
}

// NewUpdateJobStatusCommandHandler creates a handler for lifecycle operations.
func NewUpdateJobStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	payment ports.PaymentCollaborator,
	notifier Notifier,
	logger *slog.Logger,
) UpdateJobStatusCommandHandler {
	return UpdateJobStatusCommandHandler{
		uowFactory: uowFactory,
		payment:    payment,
		notifier:   notifier,
		logger:     logger.With("component", "update_job_status"),
	}
}

// Handle processes the transition command.
func (h UpdateJobStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobStatusCommand) error {
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
	updatedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !cmd.IsAdmin() && !updatedJob.IsCustomer(cmd.ActorID()) && !updatedJob.IsAssignedPro(cmd.ActorID()) {
		return errs.NewForbiddenError("actor may not update this job")
	}

	previous := updatedJob.Status()
	wasPaymentPending := updatedJob.PaymentStatus() == job.PaymentPending

	if err = updatedJob.TransitionTo(cmd.Next()); err != nil {
		return err
	}

	if err = h.captureProLocation(ctx, uow, updatedJob, cmd); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, updatedJob); err != nil {
		return err
	}

	event, err := job.NewEvent(
		updatedJob.ID(), cmd.ActorID(), cmd.Next().String(), cmd.Location(),
		map[string]string{job.MetaPreviousStatus: previous.String()}, time.Now())
	if err != nil {
		return err
	}
	if err = jobRepo.AddEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.tellPayment(ctx, updatedJob, wasPaymentPending)
	h.notifyParties(ctx, updatedJob, previous, cmd.ActorID())
	return nil
}

// captureProLocation updates the professional's live location when the
// assigned professional reports en_route or arrived with a coordinate.
func (h UpdateJobStatusCommandHandler) captureProLocation(
	ctx context.Context,
	uow LifecycleUoW,
	updatedJob *job.Job,
	cmd UpdateJobStatusCommand,
) error {
	if cmd.Location() == nil || !updatedJob.IsAssignedPro(cmd.ActorID()) {
		return nil
	}
	if cmd.Next() != job.StatusEnRoute && cmd.Next() != job.StatusArrived {
		return nil
	}

	proRepo := uow.ProfessionalRepository()
	pro, err := proRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = pro.UpdateLocation(*cmd.Location()); err != nil {
		return err
	}
	return proRepo.Update(ctx, pro)
}

// tellPayment informs the payment collaborator after commit. The local
// payment flag already flipped with the transition; a collaborator failure
// is logged, not surfaced.
func (h UpdateJobStatusCommandHandler) tellPayment(ctx context.Context, updatedJob *job.Job, wasPending bool) {
	switch {
	case updatedJob.Status() == job.StatusStarted && wasPending:
		if err := h.payment.Capture(ctx, updatedJob.ID()); err != nil {
			h.logger.Warn("payment capture call failed",
				"job_id", updatedJob.ID().String(), "error", err)
		}
	case updatedJob.Status() == job.StatusCompleted:
		if err := h.payment.MarkCompleted(ctx, updatedJob.ID()); err != nil {
			h.logger.Warn("payment completion call failed",
				"job_id", updatedJob.ID().String(), "error", err)
		}
	}
}

// notifyParties tells the requester and the assigned professional about the
// transition, skipping the professional when they caused it themselves.
func (h UpdateJobStatusCommandHandler) notifyParties(
	ctx context.Context,
	updatedJob *job.Job,
	previous job.Status,
	actorID kernel.UUID,
) {
	event := notifications.Event{
		Type:     notification.TypeJobStatusUpdate,
		Title:    "Job update",
		Body:     "Job moved from " + previous.String() + " to " + updatedJob.Status().String(),
		Channels: []notification.Channel{notification.ChannelPush, notification.ChannelInApp},
		Data:     map[string]string{"job_id": updatedJob.ID().String(), "status": updatedJob.Status().String()},
	}

	event.UserID = updatedJob.CustomerID()
	h.notifier.Notify(ctx, event)

	if pro := updatedJob.AssignedPro(); pro != nil && !pro.IsEqual(actorID) {
		event.UserID = *pro
		h.notifier.Notify(ctx, event)
	}
}
