package job

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// platformFeePercent is the platform's cut of the job price.
const platformFeePercent = 10

// ErrPricingIsNotConstructed is returned when using a Pricing that was not
// created through NewPricing or RestorePricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing or RestorePricing constructors")

// Pricing is the immutable money breakdown of a job in integer
// minor-currency units (cents). The invariant payout + fee == price holds
// exactly for every constructed instance.
type Pricing struct { //nolint:recvcheck //using for validation
	priceCents       int64
	platformFeeCents int64
	payoutCents      int64

	guard guard.ConstructorGuard
}

// NewPricing derives the fee and payout from a non-negative price:
// fee = round(price * 0.10), payout = price - fee.
func NewPricing(priceCents int64) (Pricing, error) {
	if priceCents < 0 {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"price_cents", fmt.Errorf("%d is negative", priceCents))
	}

	// Integer round-half-up of price*10%.
	fee := (priceCents*platformFeePercent + 50) / 100

	return Pricing{
		priceCents:       priceCents,
		platformFeeCents: fee,
		payoutCents:      priceCents - fee,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestorePricing reconstructs a Pricing from persistence, enforcing the
// payout + fee == price invariant.
func RestorePricing(priceCents, platformFeeCents, payoutCents int64) (Pricing, error) {
	if priceCents < 0 || platformFeeCents < 0 || payoutCents < 0 {
		return Pricing{}, errs.NewValueIsInvalidError("pricing amounts must be non-negative")
	}

	if platformFeeCents+payoutCents != priceCents {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"pricing",
			fmt.Errorf("fee %d + payout %d != price %d", platformFeeCents, payoutCents, priceCents))
	}

	return Pricing{
		priceCents:       priceCents,
		platformFeeCents: platformFeeCents,
		payoutCents:      payoutCents,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Pricing was created through a constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// PriceCents returns the full price charged to the customer.
func (p Pricing) PriceCents() int64 {
	return p.priceCents
}

// PlatformFeeCents returns the platform's share.
func (p Pricing) PlatformFeeCents() int64 {
	return p.platformFeeCents
}

// PayoutCents returns the professional's share.
func (p Pricing) PayoutCents() int64 {
	return p.payoutCents
}
