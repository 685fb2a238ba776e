// Package compliancerepo implements the compliance oracle against the
// database. Compliance rows are maintained by an external verification
// pipeline; this adapter only reads them.
package compliancerepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplianceRecordDTO represents one per-category compliance verdict for a
// professional.
type ComplianceRecordDTO struct {
	ProID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category  string    `gorm:"primaryKey"`
	Compliant bool      ``
	Reason    string    ``
}

// TableName specifies the database table name for compliance entities.
func (ComplianceRecordDTO) TableName() string {
	return "compliance_records"
}

// GormComplianceOracle implements ComplianceOracle using GORM.
type GormComplianceOracle struct {
	db *gorm.DB
}

// NewGormComplianceOracle creates a new GORM compliance oracle.
func NewGormComplianceOracle(db *gorm.DB) *GormComplianceOracle {
	return &GormComplianceOracle{db: db}
}

// GetCompliance retrieves the professional's verdicts for the given
// categories. Categories without a stored row are absent from the result;
// claim policy treats a missing record as a blocker.
func (o *GormComplianceOracle) GetCompliance(
	ctx context.Context,
	proID kernel.UUID,
	categories []string,
) ([]professional.ComplianceRecord, error) {
	if err := proID.Validate(); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errs.NewValueIsRequiredError("categories")
	}

	var dtos []ComplianceRecordDTO
	err := o.db.WithContext(ctx).
		Find(&dtos, "pro_id = ? AND category IN ?", proID.Bytes(), categories).Error
	if err != nil {
		return nil, err
	}

	records := make([]professional.ComplianceRecord, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ProID[:])
		if idErr != nil {
			return nil, idErr
		}
		records = append(records, professional.ComplianceRecord{
			ProID:     id.String(),
			Category:  dto.Category,
			Compliant: dto.Compliant,
			Reason:    dto.Reason,
		})
	}

	return records, nil
}

// Upsert stores one verdict, overwriting any previous row for the same
// professional and category. Used for seeding and tests.
func (o *GormComplianceOracle) Upsert(ctx context.Context, record professional.ComplianceRecord) error {
	proID, err := kernel.UUIDFromString(record.ProID)
	if err != nil {
		return err
	}

	dto := ComplianceRecordDTO{
		ProID:     proID.Bytes(),
		Category:  record.Category,
		Compliant: record.Compliant,
		Reason:    record.Reason,
	}

	return o.db.WithContext(ctx).Save(&dto).Error
}
