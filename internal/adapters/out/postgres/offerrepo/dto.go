// Package offerrepo provides data transfer objects and mapping functions for
// offer and assignment persistence. The assignment table carries the unique
// constraint that serializes the first-acceptance-wins claim protocol.
package offerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
// The stored status may lag the deadline; readers filter on expires_at.
type OfferDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID `gorm:"type:uuid;index"`
	ProID       uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"index"`
	PayoutCents int64     ``
	DistanceKm  *float64  ``
	ExpiresAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// AssignmentDTO records the winning claim for a job. The unique index on
// job_id is the serialization point: at most one row per job can ever
// exist, so concurrent acceptances race on this insert and exactly one wins.
type AssignmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OfferID   uuid.UUID `gorm:"type:uuid"`
	ProID     uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time ``
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "offer_assignments"
}

// fromDomain converts an offer aggregate to its database representation.
func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:          aggregate.ID().Bytes(),
		JobID:       aggregate.JobID().Bytes(),
		ProID:       aggregate.ProID().Bytes(),
		Status:      aggregate.Status().String(),
		PayoutCents: aggregate.PayoutCents(),
		DistanceKm:  aggregate.DistanceKm(),
		ExpiresAt:   aggregate.ExpiresAt(),
	}
}

// toDomain converts a database DTO to an offer aggregate using RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	proID, err := kernel.UUIDFromBytes(dto.ProID[:])
	if err != nil {
		return nil, err
	}

	status, err := offer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, jobID, proID, status, dto.PayoutCents, dto.DistanceKm, dto.ExpiresAt)
}

// assignmentFromDomain converts an assignment to its database representation.
func assignmentFromDomain(assignment *offer.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:        assignment.ID().Bytes(),
		JobID:     assignment.JobID().Bytes(),
		OfferID:   assignment.OfferID().Bytes(),
		ProID:     assignment.ProID().Bytes(),
		CreatedAt: assignment.CreatedAt(),
	}
}

// assignmentToDomain converts a database DTO to an assignment.
func assignmentToDomain(dto AssignmentDTO) (*offer.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}
	proID, err := kernel.UUIDFromBytes(dto.ProID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreAssignment(id, jobID, offerID, proID, dto.CreatedAt)
}
