// Package ports defines the persistence and collaborator contracts of the
// dispatch engine. These interfaces sit between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates and
// their append-only satellites (events, ratings).
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllRequestedWithoutOffers retrieves requested jobs that have no
	// offers yet. Used by the match pump to fan out missed jobs.
	GetAllRequestedWithoutOffers(ctx context.Context) ([]*job.Job, error)

	// AddEvent appends an audit trail record. Events are never mutated.
	AddEvent(ctx context.Context, event *job.Event) error

	// UpsertRating stores a rating keyed by (job id, customer id):
	// a repeated submission overwrites the previous score and comment.
	UpsertRating(ctx context.Context, rating *job.Rating) error

	// GetProRatingAverage computes the professional's rating average over
	// all stored ratings. Returns 0 for an unrated professional.
	GetProRatingAverage(ctx context.Context, proID kernel.UUID) (float64, error)
}
