// Package catalogrepo implements the service catalog against the database.
package catalogrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// ServiceDTO represents one bookable service category in the catalog.
type ServiceDTO struct {
	Code               string `gorm:"primaryKey"`
	Name               string ``
	BasePriceCents     int64  ``
	DiagnosticFeeCents int64  ``
	IsActive           bool   ``
}

// TableName specifies the database table name for service entities.
func (ServiceDTO) TableName() string {
	return "services"
}

// GormServiceCatalog implements ServiceCatalog using GORM.
type GormServiceCatalog struct {
	db *gorm.DB
}

// NewGormServiceCatalog creates a new GORM service catalog.
func NewGormServiceCatalog(db *gorm.DB) *GormServiceCatalog {
	return &GormServiceCatalog{db: db}
}

// GetActive retrieves an active service by code. Unknown and deactivated
// codes both come back as ObjectNotFound so callers need not distinguish.
func (c *GormServiceCatalog) GetActive(ctx context.Context, code string) (ports.CatalogService, error) {
	if code == "" {
		return ports.CatalogService{}, errs.NewValueIsRequiredError("service_code")
	}

	var dto ServiceDTO
	err := c.db.WithContext(ctx).First(&dto, "code = ? AND is_active = ?", code, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogService{}, errs.NewObjectNotFoundError("service", code)
		}
		return ports.CatalogService{}, err
	}

	return ports.CatalogService{
		Code:               dto.Code,
		Name:               dto.Name,
		BasePriceCents:     dto.BasePriceCents,
		DiagnosticFeeCents: dto.DiagnosticFeeCents,
		IsActive:           dto.IsActive,
	}, nil
}

// Add stores a catalog entry. Used for seeding and administration.
func (c *GormServiceCatalog) Add(ctx context.Context, service ports.CatalogService) error {
	if service.Code == "" {
		return errs.NewValueIsRequiredError("service_code")
	}

	dto := ServiceDTO{
		Code:               service.Code,
		Name:               service.Name,
		BasePriceCents:     service.BasePriceCents,
		DiagnosticFeeCents: service.DiagnosticFeeCents,
		IsActive:           service.IsActive,
	}

	return c.db.WithContext(ctx).Create(&dto).Error
}
