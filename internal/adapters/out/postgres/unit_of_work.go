// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains the set of aggregates touched by
// one business transaction and coordinates writing them out atomically.
//
// Each command handler creates a fresh unit of work through the factory,
// begins a transaction, performs its repository operations, and commits or
// rolls back as a whole. Repositories obtained from an active unit of work
// run inside its transaction; obtained outside one, they run directly on
// the main connection.
//
// The database connection must be opened with gorm.Config{TranslateError:
// true} so unique constraint violations surface as gorm.ErrDuplicatedKey;
// the assignment repository relies on this to turn the claim race into a
// Conflict error.
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/adapters/out/postgres/notifyrepo"
	"dispatch/internal/adapters/out/postgres/offerrepo"
	"dispatch/internal/adapters/out/postgres/prorepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracking enables post-commit processing such as outbox publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection. Each business operation gets a fresh instance so concurrent
// operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository returns a job repository bound to the current transaction.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// OfferRepository returns an offer repository bound to the current transaction.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow)
}

// AssignmentRepository returns an assignment repository bound to the current
// transaction. Its insert is the serialization point of the claim protocol.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return offerrepo.NewGormAssignmentRepository(uow.conn())
}

// ProfessionalRepository returns a professional repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ProfessionalRepository() ports.ProfessionalRepository {
	return prorepo.NewGormProfessionalRepository(uow.conn(), uow)
}

// NotificationRepository returns a notification repository bound to the
// current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notifyrepo.NewGormNotificationRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
