package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/offer"
)

// ExpireOffersResult reports what one sweep run changed.
type ExpireOffersResult struct {
	Expired    int
	Superseded int
}

// ExpireOffersCommandHandler runs the offer sweep. It is bookkeeping only:
// claimability is already enforced lazily by deadline checks, so the sweep
// merely settles stored statuses. Accepted offers are never touched: the
// repository queries only surface offers still stored as offered, and each
// write is guarded on the stored status so a claim that commits between the
// sweep's read and write keeps its win.
type ExpireOffersCommandHandler struct {
	uowFactory SweepUoWFactory
	logger     *slog.Logger
}

// NewExpireOffersCommandHandler creates a handler for sweep operations.
func NewExpireOffersCommandHandler(uowFactory SweepUoWFactory, logger *slog.Logger) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "expire_offers"),
	}
}

// Handle processes the sweep command.
func (h ExpireOffersCommandHandler) Handle(ctx context.Context, cmd ExpireOffersCommand) (ExpireOffersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExpireOffersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ExpireOffersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()
	result := ExpireOffersResult{}

	expired, err := offerRepo.GetAllExpiredOffered(ctx, time.Now())
	if err != nil {
		return ExpireOffersResult{}, err
	}
	for _, o := range expired {
		if err = o.Expire(); err != nil {
			return ExpireOffersResult{}, err
		}
		settled, settleErr := offerRepo.Settle(ctx, o)
		if settleErr != nil {
			return ExpireOffersResult{}, settleErr
		}
		if settled {
			result.Expired++
		}
	}

	superseded, err := offerRepo.GetAllOfferedOnClosedJobs(ctx)
	if err != nil {
		return ExpireOffersResult{}, err
	}
	for _, o := range superseded {
		// An offer may be both past deadline and on a closed job; the
		// expiry pass above already settled it then.
		if o.Status() != offer.StatusOffered {
			continue
		}
		if err = o.Supersede(); err != nil {
			return ExpireOffersResult{}, err
		}
		settled, settleErr := offerRepo.Settle(ctx, o)
		if settleErr != nil {
			return ExpireOffersResult{}, settleErr
		}
		if settled {
			result.Superseded++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ExpireOffersResult{}, err
	}

	if result.Expired > 0 || result.Superseded > 0 {
		h.logger.Info("offer sweep settled statuses",
			"expired", result.Expired, "superseded", result.Superseded)
	}
	return result, nil
}
