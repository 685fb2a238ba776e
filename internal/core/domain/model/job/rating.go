package job

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Rating score bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

// ErrRatingIsNotConstructed is returned when a Rating was not created
// through NewRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is the customer's one-shot annotation of a completed job.
// It is keyed (job, customer) so a retry overwrites rather than duplicates.
type Rating struct {
	id         kernel.UUID
	jobID      kernel.UUID
	customerID kernel.UUID
	proID      kernel.UUID
	score      int
	comment    string

	isConstructed bool
}

// NewRating creates a rating with score within [RatingMin, RatingMax].
func NewRating(
	jobID kernel.UUID,
	customerID kernel.UUID,
	proID kernel.UUID,
	score int,
	comment string,
) (*Rating, error) {
	if err := errors.Join(jobID.Validate(), customerID.Validate(), proID.Validate()); err != nil {
		return nil, err
	}
	if score < RatingMin || score > RatingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", score, RatingMin, RatingMax)
	}

	return &Rating{
		id:            kernel.NewUUID(),
		jobID:         jobID,
		customerID:    customerID,
		proID:         proID,
		score:         score,
		comment:       comment,
		isConstructed: true,
	}, nil
}

// Validate ensures the Rating was created through the constructor.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating identifier.
func (r *Rating) ID() kernel.UUID { return r.id }

// JobID returns the rated job.
func (r *Rating) JobID() kernel.UUID { return r.jobID }

// CustomerID returns the rating author.
func (r *Rating) CustomerID() kernel.UUID { return r.customerID }

// ProID returns the rated professional.
func (r *Rating) ProID() kernel.UUID { return r.proID }

// Score returns the star score.
func (r *Rating) Score() int { return r.score }

// Comment returns the optional free-text comment.
func (r *Rating) Comment() string { return r.comment }
