package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer to storage.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Settle persists a sweep status change only while the stored row is
	// still offered. Returns false without error when the row was claimed
	// or settled concurrently since it was read.
	Settle(ctx context.Context, aggregate *offer.Offer) (bool, error)

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllOpenByJob retrieves offers for a job still stored as offered,
	// including ones past their deadline. The claim protocol supersedes
	// these after a win.
	GetAllOpenByJob(ctx context.Context, jobID kernel.UUID) ([]*offer.Offer, error)

	// GetAllExpiredOffered retrieves offers stored as offered whose
	// deadline lies before now. Used by the expiry sweep.
	GetAllExpiredOffered(ctx context.Context, now time.Time) ([]*offer.Offer, error)

	// GetAllOfferedOnClosedJobs retrieves offers stored as offered whose
	// job has left the requested status. The sweep marks these superseded.
	GetAllOfferedOnClosedJobs(ctx context.Context) ([]*offer.Offer, error)
}

// AssignmentRepository persists the claim protocol's binding artifact.
// The store enforces a uniqueness constraint on job id: Add by the loser of
// a concurrent claim must fail with a duplicate-key error the caller can
// translate to Conflict.
type AssignmentRepository interface {
	// Add persists the winning assignment for a job.
	Add(ctx context.Context, aggregate *offer.Assignment) error

	// GetByJob retrieves the assignment for a job, if any.
	GetByJob(ctx context.Context, jobID kernel.UUID) (*offer.Assignment, error)
}
