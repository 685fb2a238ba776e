package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSweepOffer(t *testing.T, expiresAt time.Time) *offer.Offer {
	t.Helper()

	o, err := offer.RestoreOffer(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		offer.StatusOffered, 8000, nil, expiresAt)
	require.NoError(t, err)
	return o
}

func TestExpireOffersCommandHandler_Handle_SettlesStatuses(t *testing.T) {
	ctx := t.Context()
	past := time.Now().Add(-time.Hour)

	staleA := newSweepOffer(t, past)
	staleB := newSweepOffer(t, past)
	lost := newSweepOffer(t, time.Now().Add(offer.TTL))

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetAllExpiredOffered", ctx, mock.AnythingOfType("time.Time")).
			Return([]*offer.Offer{staleA, staleB}, nil).Once(),
		offerRepo.On("Settle", ctx, staleA).Return(true, nil).Once(),
		offerRepo.On("Settle", ctx, staleB).Return(true, nil).Once(),
		offerRepo.On("GetAllOfferedOnClosedJobs", ctx).
			Return([]*offer.Offer{lost}, nil).Once(),
		offerRepo.On("Settle", ctx, lost).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOffersCommandHandler(factory, testLogger())
	result, err := handler.Handle(ctx, commands.NewExpireOffersCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Expired)
	assert.Equal(t, 1, result.Superseded)
	assert.Equal(t, offer.StatusExpired, staleA.Status())
	assert.Equal(t, offer.StatusExpired, staleB.Status())
	assert.Equal(t, offer.StatusSuperseded, lost.Status())

	uow.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
}

func TestExpireOffersCommandHandler_Handle_ExpiryWinsOverSupersession(t *testing.T) {
	ctx := t.Context()

	// Past deadline AND on a closed job: the expiry pass settles it first
	// and the supersession pass must leave it alone.
	both := newSweepOffer(t, time.Now().Add(-time.Hour))

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetAllExpiredOffered", ctx, mock.AnythingOfType("time.Time")).
			Return([]*offer.Offer{both}, nil).Once(),
		offerRepo.On("Settle", ctx, both).Return(true, nil).Once(),
		offerRepo.On("GetAllOfferedOnClosedJobs", ctx).
			Return([]*offer.Offer{both}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOffersCommandHandler(factory, testLogger())
	result, err := handler.Handle(ctx, commands.NewExpireOffersCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Expired)
	assert.Zero(t, result.Superseded)
	assert.Equal(t, offer.StatusExpired, both.Status())
	offerRepo.AssertNumberOfCalls(t, "Settle", 1)
}

func TestExpireOffersCommandHandler_Handle_ClaimedDuringSweepIsLeftAlone(t *testing.T) {
	ctx := t.Context()

	// Read as offered at the deadline boundary, then claimed before the
	// sweep writes: the guarded write matches nothing and must not count.
	raced := newSweepOffer(t, time.Now().Add(-time.Second))

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetAllExpiredOffered", ctx, mock.AnythingOfType("time.Time")).
			Return([]*offer.Offer{raced}, nil).Once(),
		offerRepo.On("Settle", ctx, raced).Return(false, nil).Once(),
		offerRepo.On("GetAllOfferedOnClosedJobs", ctx).
			Return([]*offer.Offer{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOffersCommandHandler(factory, testLogger())
	result, err := handler.Handle(ctx, commands.NewExpireOffersCommand())

	require.NoError(t, err)
	assert.Zero(t, result.Expired)
	assert.Zero(t, result.Superseded)
	offerRepo.AssertExpectations(t)
}

func TestExpireOffersCommandHandler_Handle_NothingToSettle(t *testing.T) {
	ctx := t.Context()

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetAllExpiredOffered", ctx, mock.AnythingOfType("time.Time")).
			Return([]*offer.Offer{}, nil).Once(),
		offerRepo.On("GetAllOfferedOnClosedJobs", ctx).
			Return([]*offer.Offer{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOffersCommandHandler(factory, testLogger())
	result, err := handler.Handle(ctx, commands.NewExpireOffersCommand())

	require.NoError(t, err)
	assert.Zero(t, result.Expired)
	assert.Zero(t, result.Superseded)
}

func TestExpireOffersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockSweepUoWFactory)
	handler := commands.NewExpireOffersCommandHandler(factory, testLogger())

	_, err := handler.Handle(t.Context(), commands.ExpireOffersCommand{})

	require.ErrorIs(t, err, commands.ErrExpireOffersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
