package offer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment constructors")

// Assignment is the binding between a job and the professional whose offer
// won the claim race. The store enforces at most one assignment per job; the
// insert of this record is the serialization point of concurrent accepts.
type Assignment struct {
	id        kernel.UUID
	jobID     kernel.UUID
	offerID   kernel.UUID
	proID     kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewAssignment creates the winning binding for a job.
func NewAssignment(jobID, offerID, proID kernel.UUID, now time.Time) (*Assignment, error) {
	if err := errors.Join(jobID.Validate(), offerID.Validate(), proID.Validate()); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            kernel.NewUUID(),
		jobID:         jobID,
		offerID:       offerID,
		proID:         proID,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(id, jobID, offerID, proID kernel.UUID, createdAt time.Time) (*Assignment, error) {
	if err := errors.Join(id.Validate(), jobID.Validate(), offerID.Validate(), proID.Validate()); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		jobID:         jobID,
		offerID:       offerID,
		proID:         proID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// JobID returns the claimed job.
func (a *Assignment) JobID() kernel.UUID { return a.jobID }

// OfferID returns the winning offer.
func (a *Assignment) OfferID() kernel.UUID { return a.offerID }

// ProID returns the winning professional.
func (a *Assignment) ProID() kernel.UUID { return a.proID }

// CreatedAt returns when the claim was won.
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }
