package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"
)

// ProfessionalRepository defines the persistence contract for professional
// aggregates.
type ProfessionalRepository interface {
	// Get retrieves a professional by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*professional.Professional, error)

	// Update persists changes to an existing professional.
	Update(ctx context.Context, aggregate *professional.Professional) error

	// GetAllOnlineByService retrieves online professionals with the given
	// service category enabled. Compliance and radius filtering happen in
	// the domain layer.
	GetAllOnlineByService(ctx context.Context, serviceCode string) ([]*professional.Professional, error)
}
