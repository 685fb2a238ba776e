// Package prorepo provides data transfer objects and mapping functions for
// professional persistence.
package prorepo

import (
	"encoding/json"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"

	"github.com/google/uuid"
)

// ProfessionalDTO represents the database structure for persisting
// professional aggregates. Services are stored as a jsonb array so the
// matcher can filter candidates with a containment query.
type ProfessionalDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    ``
	Services           []byte    `gorm:"type:jsonb"`
	IsOnline           bool      `gorm:"index"`
	RatingAverage      float64   ``
	Latitude           *float64  ``
	Longitude          *float64  ``
	VerificationStatus string    ``
	AccountType        string    ``
	ActiveRole         string    ``
}

// TableName specifies the database table name for professional entities.
func (ProfessionalDTO) TableName() string {
	return "professionals"
}

// fromDomain converts a professional aggregate to its database representation.
func fromDomain(aggregate *professional.Professional) (ProfessionalDTO, error) {
	services, err := json.Marshal(aggregate.Services())
	if err != nil {
		return ProfessionalDTO{}, err
	}

	var latitude, longitude *float64
	if loc := aggregate.CurrentLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		latitude, longitude = &lat, &lng
	}

	return ProfessionalDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Services:           services,
		IsOnline:           aggregate.IsOnline(),
		RatingAverage:      aggregate.RatingAverage(),
		Latitude:           latitude,
		Longitude:          longitude,
		VerificationStatus: aggregate.VerificationStatus().String(),
		AccountType:        aggregate.AccountType(),
		ActiveRole:         aggregate.ActiveRole(),
	}, nil
}

// toDomain converts a database DTO to a professional aggregate.
func toDomain(dto ProfessionalDTO) (*professional.Professional, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var services []string
	if len(dto.Services) > 0 {
		if err = json.Unmarshal(dto.Services, &services); err != nil {
			return nil, err
		}
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	verification, err := professional.VerificationStatusFromString(dto.VerificationStatus)
	if err != nil {
		return nil, err
	}

	return professional.RestoreProfessional(
		id, dto.Name, services, dto.IsOnline, dto.RatingAverage, location,
		verification, dto.AccountType, dto.ActiveRole)
}
