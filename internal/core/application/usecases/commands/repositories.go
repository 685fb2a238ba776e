// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/ports"
)

// Notifier is the best-effort outbound messaging hook used by handlers.
// Implementations must never fail the caller; the notifications.Router
// satisfies this interface.
type Notifier interface {
	Notify(ctx context.Context, event notifications.Event)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ProfessionalRepoFactory provides access to the professional repository within a transaction.
	ProfessionalRepoFactory interface {
		ProfessionalRepository() ports.ProfessionalRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// MatchUoW manages transactions for offer fan-out: the job being
	// matched, its candidate professionals, and the offers created.
	MatchUoW interface {
		TxManager
		JobRepoFactory
		OfferRepoFactory
		ProfessionalRepoFactory
	}

	// MatchUoWFactory creates new match unit of work instances.
	MatchUoWFactory interface {
		Create() MatchUoW
	}

	// ClaimUoW manages transactions for the claim protocol: offer, job,
	// professional, and the assignment whose insert decides the race.
	ClaimUoW interface {
		TxManager
		JobRepoFactory
		OfferRepoFactory
		AssignmentRepoFactory
		ProfessionalRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// LifecycleUoW manages transactions for status transitions: the job
	// plus the professional whose live location may be captured.
	LifecycleUoW interface {
		TxManager
		JobRepoFactory
		ProfessionalRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// SweepUoW manages transactions for the offer expiry sweep.
	SweepUoW interface {
		TxManager
		OfferRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
