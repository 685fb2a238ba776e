package ports

import (
	"context"
)

// CatalogService is the catalog's view of one bookable service category.
type CatalogService struct {
	Code               string
	Name               string
	BasePriceCents     int64
	DiagnosticFeeCents int64
	IsActive           bool
}

// PriceCents returns the job price composed from the catalog entry.
func (s CatalogService) PriceCents() int64 {
	return s.BasePriceCents + s.DiagnosticFeeCents
}

// ServiceCatalog resolves service category codes against the catalog.
type ServiceCatalog interface {
	// GetActive retrieves an active service by code. Returns an
	// ObjectNotFound error for unknown or inactive codes.
	GetActive(ctx context.Context, code string) (CatalogService, error)
}
