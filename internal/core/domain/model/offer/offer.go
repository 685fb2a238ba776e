package offer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// TTL is how long an offer stays claimable after creation.
const TTL = 30 * time.Minute

// ErrOfferIsNotConstructed is returned when an Offer was not created through
// NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructors")

// Offer is a time-bounded proposal of a job to a professional.
//
// It snapshots the payout and the professional's distance to the job site at
// match time, so the feed stays stable even if the professional moves.
// Expiry is lazy: the stored status may still read offered after the
// deadline, and every consumer must go through IsExpired/Accept rather than
// trust the raw status.
type Offer struct {
	id          kernel.UUID
	jobID       kernel.UUID
	proID       kernel.UUID
	status      Status
	payoutCents int64
	distanceKm  *float64
	expiresAt   time.Time

	isConstructed bool
}

// NewOffer creates a live offer expiring TTL after now. distanceKm is nil
// when the professional had no known location at match time.
func NewOffer(
	jobID kernel.UUID,
	proID kernel.UUID,
	payoutCents int64,
	distanceKm *float64,
	now time.Time,
) (*Offer, error) {
	o := &Offer{
		status:        StatusOffered,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setJobID(jobID),
		o.setProID(proID),
		o.setPayoutCents(payoutCents),
		o.setDistanceKm(distanceKm),
		o.setExpiresAt(now.Add(TTL)),
	); err != nil {
		return nil, err
	}

	o.id = kernel.NewUUID()
	return o, nil
}

// RestoreOffer reconstructs an Offer from persistence.
func RestoreOffer(
	id kernel.UUID,
	jobID kernel.UUID,
	proID kernel.UUID,
	status Status,
	payoutCents int64,
	distanceKm *float64,
	expiresAt time.Time,
) (*Offer, error) {
	o := &Offer{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setJobID(jobID),
		o.setProID(proID),
		status.Validate(),
		o.setPayoutCents(payoutCents),
		o.setDistanceKm(distanceKm),
		o.setExpiresAt(expiresAt),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Offer was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer identifier.
func (o *Offer) ID() kernel.UUID { return o.id }

// JobID returns the offered job.
func (o *Offer) JobID() kernel.UUID { return o.jobID }

// ProID returns the professional the offer targets.
func (o *Offer) ProID() kernel.UUID { return o.proID }

// Status returns the stored status. Prefer IsExpired for liveness checks:
// the stored status lags the deadline until the sweep catches up.
func (o *Offer) Status() Status { return o.status }

// PayoutCents returns the payout snapshot taken at match time.
func (o *Offer) PayoutCents() int64 { return o.payoutCents }

// DistanceKm returns the distance snapshot, or nil if the professional's
// location was unknown at match time.
func (o *Offer) DistanceKm() *float64 { return o.distanceKm }

// ExpiresAt returns the claim deadline.
func (o *Offer) ExpiresAt() time.Time { return o.expiresAt }

// IsOwnedBy reports whether the offer targets the given professional.
func (o *Offer) IsOwnedBy(proID kernel.UUID) bool {
	return o.proID.IsEqual(proID)
}

// IsExpired reports whether the claim deadline has passed, regardless of
// the stored status.
func (o *Offer) IsExpired(now time.Time) bool {
	return now.After(o.expiresAt)
}

// IsClaimable reports whether the offer can still be accepted at now:
// it must be in the offered status and within its deadline.
func (o *Offer) IsClaimable(now time.Time) bool {
	return o.status == StatusOffered && !o.IsExpired(now)
}

// Accept marks the offer as the claim race winner. Returns a Conflict error
// if the offer is expired or no longer in the offered status.
func (o *Offer) Accept(now time.Time) error {
	if o.IsExpired(now) {
		return errs.NewConflictError("offer is no longer claimable", "offer expired")
	}
	if o.status != StatusOffered {
		return errs.NewConflictError("offer is no longer claimable", "offer status is "+o.status.String())
	}

	o.status = StatusAccepted
	return nil
}

// Expire marks an unclaimed offer as expired. Legal only from offered;
// accepted offers are never expired retroactively.
func (o *Offer) Expire() error {
	if o.status != StatusOffered {
		return errs.NewConflictError("offer is not live", "offer status is "+o.status.String())
	}

	o.status = StatusExpired
	return nil
}

// Supersede marks a live offer as lost to a competing acceptance.
// Legal only from offered.
func (o *Offer) Supersede() error {
	if o.status != StatusOffered {
		return errs.NewConflictError("offer is not live", "offer status is "+o.status.String())
	}

	o.status = StatusSuperseded
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.jobID = id
	return nil
}

func (o *Offer) setProID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.proID = id
	return nil
}

func (o *Offer) setPayoutCents(payoutCents int64) error {
	if payoutCents < 0 {
		return errs.NewValueIsInvalidError("payout cannot be negative")
	}
	o.payoutCents = payoutCents
	return nil
}

func (o *Offer) setDistanceKm(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm < 0 {
		return errs.NewValueIsInvalidError("distance cannot be negative")
	}
	o.distanceKm = distanceKm
	return nil
}

func (o *Offer) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expires_at")
	}
	o.expiresAt = expiresAt
	return nil
}
