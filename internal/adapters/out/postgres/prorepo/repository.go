package prorepo

import (
	"context"
	"encoding/json"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfessionalRepository implements ProfessionalRepository using GORM.
type GormProfessionalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProfessionalRepository creates a new GORM professional repository.
func NewGormProfessionalRepository(db *gorm.DB, tracker aggregateTracker) *GormProfessionalRepository {
	return &GormProfessionalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a professional by ID.
func (r *GormProfessionalRepository) Get(ctx context.Context, id kernel.UUID) (*professional.Professional, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfessionalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("professional", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing professional to the database.
func (r *GormProfessionalRepository) Update(ctx context.Context, aggregate *professional.Professional) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProfessionalDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Add saves a new professional to the database.
func (r *GormProfessionalRepository) Add(ctx context.Context, aggregate *professional.Professional) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllOnlineByService retrieves online professionals offering the given
// service. Uses a jsonb containment query against the stored service list.
func (r *GormProfessionalRepository) GetAllOnlineByService(
	ctx context.Context,
	serviceCode string,
) ([]*professional.Professional, error) {
	if serviceCode == "" {
		return nil, errs.NewValueIsRequiredError("service_code")
	}

	needle, err := json.Marshal([]string{serviceCode})
	if err != nil {
		return nil, err
	}

	var dtos []ProfessionalDTO
	err = r.db.WithContext(ctx).
		Where("is_online = ? AND services @> ?", true, needle).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pros := make([]*professional.Professional, 0, len(dtos))
	for _, dto := range dtos {
		p, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		pros = append(pros, p)
	}

	return pros, nil
}
