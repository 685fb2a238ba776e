package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	jobRepo  *MockJobRepository
	proRepo  *MockProfessionalRepository
	uow      *MockUoW
	payment  *MockPaymentCollaborator
	notifier *RecordingNotifier
	handler  commands.UpdateJobStatusCommandHandler
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	f := &lifecycleFixture{
		jobRepo:  new(MockJobRepository),
		proRepo:  new(MockProfessionalRepository),
		uow:      new(MockUoW),
		payment:  new(MockPaymentCollaborator),
		notifier: &RecordingNotifier{},
	}

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewUpdateJobStatusCommandHandler(factory, f.payment, f.notifier, testLogger())
	return f
}

func TestUpdateJobStatusCommandHandler_Handle_ProGoesEnRoute(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	proID := kernel.NewUUID()
	assignedJob := newJobInStatus(t, kernel.NewUUID(), proID, job.StatusAssigned)
	pro := newApprovedPro(t, proID)
	location := testLocation(t)

	cmd, err := commands.NewUpdateJobStatusCommand(
		assignedJob.ID(), proID, false, job.StatusEnRoute, &location)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		f.uow.On("ProfessionalRepository").Return(f.proRepo).Once(),
		f.proRepo.On("Get", ctx, proID).Return(pro, nil).Once(),
		f.proRepo.On("Update", ctx, pro).Return(nil).Once(),
		f.jobRepo.On("Update", ctx, assignedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusEnRoute, assignedJob.Status())

	// Live location captured from the reporting professional.
	require.NotNil(t, pro.CurrentLocation())
	captured, eqErr := pro.CurrentLocation().IsEqual(location)
	require.NoError(t, eqErr)
	assert.True(t, captured)

	// Audit event records the transition and where it happened.
	event := f.jobRepo.Calls[2].Arguments[1].(*job.Event)
	assert.Equal(t, "en_route", event.Name())
	assert.Equal(t, "assigned", event.Meta()[job.MetaPreviousStatus])

	// The professional caused the transition, so only the customer hears.
	require.Len(t, f.notifier.Events, 1)
	assert.Equal(t, notification.TypeJobStatusUpdate, f.notifier.Events[0].Type)
	assert.True(t, f.notifier.Events[0].UserID.IsEqual(assignedJob.CustomerID()))

	f.payment.AssertNotCalled(t, "Capture", ctx, assignedJob.ID())
	f.uow.AssertExpectations(t)
	f.jobRepo.AssertExpectations(t)
	f.proRepo.AssertExpectations(t)
}

func TestUpdateJobStatusCommandHandler_Handle_StartedCapturesPayment(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	proID := kernel.NewUUID()
	arrivedJob := newJobInStatus(t, kernel.NewUUID(), proID, job.StatusArrived)

	cmd, err := commands.NewUpdateJobStatusCommand(
		arrivedJob.ID(), proID, false, job.StatusStarted, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, arrivedJob.ID()).Return(arrivedJob, nil).Once(),
		f.jobRepo.On("Update", ctx, arrivedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.payment.On("Capture", ctx, arrivedJob.ID()).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.PaymentCaptured, arrivedJob.PaymentStatus())
	f.payment.AssertExpectations(t)
}

func TestUpdateJobStatusCommandHandler_Handle_CustomerCompletesJob(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	customerID := kernel.NewUUID()
	proID := kernel.NewUUID()
	startedJob := newJobInStatus(t, customerID, proID, job.StatusStarted)

	cmd, err := commands.NewUpdateJobStatusCommand(
		startedJob.ID(), customerID, false, job.StatusCompleted, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, startedJob.ID()).Return(startedJob, nil).Once(),
		f.jobRepo.On("Update", ctx, startedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.payment.On("MarkCompleted", ctx, startedJob.ID()).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.PaymentCompleted, startedJob.PaymentStatus())

	// The customer acted, so both parties are told.
	require.Len(t, f.notifier.Events, 2)
	assert.True(t, f.notifier.Events[0].UserID.IsEqual(customerID))
	assert.True(t, f.notifier.Events[1].UserID.IsEqual(proID))
	f.payment.AssertExpectations(t)
}

func TestUpdateJobStatusCommandHandler_Handle_PaymentFailureDoesNotSurface(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	proID := kernel.NewUUID()
	arrivedJob := newJobInStatus(t, kernel.NewUUID(), proID, job.StatusArrived)

	cmd, err := commands.NewUpdateJobStatusCommand(
		arrivedJob.ID(), proID, false, job.StatusStarted, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, arrivedJob.ID()).Return(arrivedJob, nil).Once(),
		f.jobRepo.On("Update", ctx, arrivedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.payment.On("Capture", ctx, arrivedJob.ID()).Return(errors.New("gateway timeout")).Once()

	err = f.handler.Handle(ctx, cmd)

	// Commit already happened; the collaborator failure is logged only.
	require.NoError(t, err)
	assert.Equal(t, job.StatusStarted, arrivedJob.Status())
}

func TestUpdateJobStatusCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	assignedJob := newJobInStatus(t, kernel.NewUUID(), kernel.NewUUID(), job.StatusAssigned)
	stranger := kernel.NewUUID()

	cmd, err := commands.NewUpdateJobStatusCommand(
		assignedJob.ID(), stranger, false, job.StatusEnRoute, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, job.StatusAssigned, assignedJob.Status())
	assert.Empty(t, f.notifier.Events)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateJobStatusCommandHandler_Handle_AdminMayCancel(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	assignedJob := newJobInStatus(t, kernel.NewUUID(), kernel.NewUUID(), job.StatusAssigned)
	admin := kernel.NewUUID()

	cmd, err := commands.NewUpdateJobStatusCommand(
		assignedJob.ID(), admin, true, job.StatusCancelled, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		f.jobRepo.On("Update", ctx, assignedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, assignedJob.Status())
}

func TestUpdateJobStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	customerID := kernel.NewUUID()
	assignedJob := newJobInStatus(t, customerID, kernel.NewUUID(), job.StatusAssigned)

	cmd, err := commands.NewUpdateJobStatusCommand(
		assignedJob.ID(), customerID, false, job.StatusCompleted, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, assignedJob.ID()).Return(assignedJob, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "assigned", transitionErr.From)
	assert.Equal(t, "completed", transitionErr.To)
	assert.ElementsMatch(t, []string{"en_route", "cancelled"}, transitionErr.AllowedNext)

	assert.Equal(t, job.StatusAssigned, assignedJob.Status())
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateJobStatusCommandHandler_Handle_LocationIgnoredForOtherActors(t *testing.T) {
	ctx := t.Context()
	f := newLifecycleFixture(t)

	customerID := kernel.NewUUID()
	startedJob := newJobInStatus(t, customerID, kernel.NewUUID(), job.StatusStarted)
	location := testLocation(t)

	cmd, err := commands.NewUpdateJobStatusCommand(
		startedJob.ID(), customerID, false, job.StatusCompleted, &location)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("JobRepository").Return(f.jobRepo).Once(),
		f.jobRepo.On("Get", ctx, startedJob.ID()).Return(startedJob, nil).Once(),
		f.jobRepo.On("Update", ctx, startedJob).Return(nil).Once(),
		f.jobRepo.On("AddEvent", ctx, mock.AnythingOfType("*job.Event")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.payment.On("MarkCompleted", ctx, startedJob.ID()).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.uow.AssertNotCalled(t, "ProfessionalRepository")
}
