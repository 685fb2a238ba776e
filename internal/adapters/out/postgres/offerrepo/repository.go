package offerrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing offer to the database.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Settle persists a sweep status change only while the stored row is still
// offered. A claim that commits between the sweep's read and this write
// leaves the row accepted; the guarded WHERE then matches nothing and the
// win stands.
func (r *GormOfferRepository) Settle(ctx context.Context, aggregate *offer.Offer) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("id = ? AND status = ?", dto.ID, offer.StatusOffered.String()).
		Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpenByJob retrieves all offers for a job still stored as offered.
func (r *GormOfferRepository) GetAllOpenByJob(ctx context.Context, jobID kernel.UUID) ([]*offer.Offer, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "job_id = ? AND status = ?", jobID.Bytes(), offer.StatusOffered.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllExpiredOffered retrieves offers still stored as offered whose
// deadline has passed. Feeds the expiry half of the bookkeeping sweep.
func (r *GormOfferRepository) GetAllExpiredOffered(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND expires_at <= ?", offer.StatusOffered.String(), now).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOfferedOnClosedJobs retrieves offers still stored as offered whose
// job has left the requested status. Feeds the supersession half of the
// bookkeeping sweep.
func (r *GormOfferRepository) GetAllOfferedOnClosedJobs(ctx context.Context) ([]*offer.Offer, error) {
	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Joins("JOIN jobs ON jobs.id = offers.job_id").
		Where("offers.status = ? AND jobs.status <> ?",
			offer.StatusOffered.String(), job.StatusRequested.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OfferDTO) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add inserts the winning claim for a job. The unique index on job_id
// rejects every acceptance after the first; the duplicate-key error is
// translated to a Conflict so callers never see a database error.
// Requires a connection opened with gorm.Config{TranslateError: true}.
func (r *GormAssignmentRepository) Add(ctx context.Context, assignment *offer.Assignment) error {
	dto := assignmentFromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("job is already assigned", "another professional claimed it first")
		}
		return err
	}

	return nil
}

// GetByJob retrieves the winning claim for a job, if one exists.
func (r *GormAssignmentRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*offer.Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", jobID.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}
