// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. It handles the conversion between the job aggregate, its
// audit events, and ratings and their relational representations.
package jobrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
type JobDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	ServiceCode      string     `gorm:"index"`
	Latitude         float64    ``
	Longitude        float64    ``
	PriceCents       int64      ``
	PlatformFeeCents int64      ``
	PayoutCents      int64      ``
	Status           string     `gorm:"index"`
	PaymentStatus    string     ``
	AssignedProID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// JobEventDTO represents one row of a job's append-only audit trail.
type JobEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID      uuid.UUID `gorm:"type:uuid;index"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Name       string    ``
	Latitude   *float64  ``
	Longitude  *float64  ``
	Meta       []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for job event entities.
func (JobEventDTO) TableName() string {
	return "job_events"
}

// RatingDTO represents a customer's rating of a completed job. The unique
// index on job_id makes resubmission an overwrite, not a duplicate.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid"`
	ProID      uuid.UUID `gorm:"type:uuid;index"`
	Score      int       ``
	Comment    string    ``
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var assignedProID *uuid.UUID
	if id := aggregate.AssignedPro(); id != nil {
		raw := id.Bytes()
		assignedProID = &raw
	}

	return JobDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		ServiceCode:      aggregate.ServiceCode(),
		Latitude:         aggregate.Location().Lat(),
		Longitude:        aggregate.Location().Lng(),
		PriceCents:       aggregate.Pricing().PriceCents(),
		PlatformFeeCents: aggregate.Pricing().PlatformFeeCents(),
		PayoutCents:      aggregate.Pricing().PayoutCents(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		AssignedProID:    assignedProID,
	}
}

// toDomain converts a database DTO to a job aggregate using RestoreJob,
// so persisted rows pass the same invariants as freshly created jobs.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var assignedProID *kernel.UUID
	if dto.AssignedProID != nil {
		proID, proErr := kernel.UUIDFromBytes((*dto.AssignedProID)[:])
		if proErr != nil {
			return nil, proErr
		}
		assignedProID = &proID
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	pricing, err := job.RestorePricing(dto.PriceCents, dto.PlatformFeeCents, dto.PayoutCents)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := job.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, customerID, dto.ServiceCode, location, pricing, status, paymentStatus, assignedProID)
}

// eventFromDomain converts an audit event to its database representation.
func eventFromDomain(event *job.Event) (JobEventDTO, error) {
	var latitude, longitude *float64
	if loc := event.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		latitude, longitude = &lat, &lng
	}

	var meta []byte
	if len(event.Meta()) > 0 {
		raw, err := json.Marshal(event.Meta())
		if err != nil {
			return JobEventDTO{}, err
		}
		meta = raw
	}

	return JobEventDTO{
		ID:         event.ID().Bytes(),
		JobID:      event.JobID().Bytes(),
		ActorID:    event.ActorID().Bytes(),
		Name:       event.Name(),
		Latitude:   latitude,
		Longitude:  longitude,
		Meta:       meta,
		OccurredAt: event.OccurredAt(),
	}, nil
}

// ratingFromDomain converts a rating to its database representation.
func ratingFromDomain(rating *job.Rating) RatingDTO {
	return RatingDTO{
		ID:         rating.ID().Bytes(),
		JobID:      rating.JobID().Bytes(),
		CustomerID: rating.CustomerID().Bytes(),
		ProID:      rating.ProID().Bytes(),
		Score:      rating.Score(),
		Comment:    rating.Comment(),
	}
}
