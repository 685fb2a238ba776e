package jobrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
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

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRequestedWithoutOffers retrieves open jobs that have never been
// matched. Feeds the dispatch pump that retries matching periodically.
func (r *GormJobRepository) GetAllRequestedWithoutOffers(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND NOT EXISTS (SELECT 1 FROM offers WHERE offers.job_id = jobs.id)",
			job.StatusRequested.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

// AddEvent appends an audit event. Events are write-once.
func (r *GormJobRepository) AddEvent(ctx context.Context, event *job.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto, err := eventFromDomain(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpsertRating stores a rating, overwriting any previous rating for the
// same job. The unique index on job_id drives the conflict clause.
func (r *GormJobRepository) UpsertRating(ctx context.Context, rating *job.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "comment"}),
	}).Create(&dto).Error
}

// GetProRatingAverage computes the professional's current average score
// across all stored ratings. Returns zero for an unrated professional.
func (r *GormJobRepository) GetProRatingAverage(ctx context.Context, proID kernel.UUID) (float64, error) {
	if err := proID.Validate(); err != nil {
		return 0, err
	}

	var average float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(score), 0)
		FROM ratings
		WHERE pro_id = ?
	`, proID.Bytes()).Scan(&average).Error
	if err != nil {
		return 0, err
	}

	return average, nil
}
