package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetJobEventsQueryIsNotConstructed = errors.New(
	"GetJobEventsQuery must be created via NewGetJobEventsQuery constructor",
)

// GetJobEventsQuery retrieves the audit trail of a job: every recorded
// transition with its actor, optional coordinate, and metadata, in the order
// it happened.
type GetJobEventsQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobEventsQuery creates a query for a job's event history.
func NewGetJobEventsQuery(jobID kernel.UUID) (GetJobEventsQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobEventsQuery{}, err
	}

	return GetJobEventsQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobEventsQueryIsNotConstructed)
}

// JobID returns the job whose history is requested.
func (q GetJobEventsQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobEventsQueryResponse is one entry in a job's audit trail.
type GetJobEventsQueryResponse struct {
	EventID    kernel.UUID
	ActorID    kernel.UUID
	Name       string
	Latitude   *float64
	Longitude  *float64
	Meta       map[string]string
	OccurredAt time.Time
}
