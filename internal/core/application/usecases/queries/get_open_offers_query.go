// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOpenOffersQueryIsNotConstructed = errors.New(
	"GetOpenOffersQuery must be created via NewGetOpenOffersQuery constructor",
)

// GetOpenOffersQuery retrieves a professional's claimable offer feed.
// Only offers that are still within their deadline and whose job is still
// open are returned; expiry is enforced in the query itself, so the feed is
// accurate even before the bookkeeping sweep settles stale rows.
type GetOpenOffersQuery struct { //nolint:recvcheck //using for validation
	proID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenOffersQuery creates a query for a professional's open offers.
func NewGetOpenOffersQuery(proID kernel.UUID) (GetOpenOffersQuery, error) {
	if err := proID.Validate(); err != nil {
		return GetOpenOffersQuery{}, err
	}

	return GetOpenOffersQuery{
		proID: proID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOffersQueryIsNotConstructed)
}

// ProID returns the professional whose feed is requested.
func (q GetOpenOffersQuery) ProID() kernel.UUID {
	return q.proID
}

// GetOpenOffersQueryResponse is one claimable offer in the feed. DistanceKm
// is nil when the professional had no known location at match time.
type GetOpenOffersQueryResponse struct {
	OfferID     kernel.UUID
	JobID       kernel.UUID
	ServiceCode string
	PayoutCents int64
	DistanceKm  *float64
	ExpiresAt   time.Time
}
