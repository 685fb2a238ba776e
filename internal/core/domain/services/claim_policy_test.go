package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaimPro(t *testing.T, status professional.VerificationStatus) *professional.Professional {
	t.Helper()

	p, err := professional.RestoreProfessional(
		kernel.NewUUID(), "Dana", []string{"plumbing"},
		true, 4.5, nil, status, professional.RolePro, professional.RolePro)
	require.NoError(t, err)
	return p
}

func TestClaimPolicy_Evaluate(t *testing.T) {
	policy := services.NewClaimPolicy()

	compliant := []professional.ComplianceRecord{
		{Category: "plumbing", Compliant: true},
	}

	t.Run("clean claim has no reasons", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)

		reasons := policy.Evaluate(j, pro, compliant, nil, 0)

		assert.Empty(t, reasons)
	})

	t.Run("missing compliance record is reported", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)

		reasons := policy.Evaluate(j, pro, nil, nil, 0)

		assert.Equal(t, []string{"no compliance record for plumbing"}, reasons)
	})

	t.Run("non-compliant record carries the oracle reason", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)
		records := []professional.ComplianceRecord{
			{Category: "plumbing", Compliant: false, Reason: "license expired"},
		}

		reasons := policy.Evaluate(j, pro, records, nil, 0)

		assert.Equal(t, []string{"not compliant for plumbing: license expired"}, reasons)
	})

	t.Run("reasons accumulate across checks", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationPending)

		// Far from the New York job site.
		caller, err := kernel.NewGeoPoint(34.0522, -118.2437)
		require.NoError(t, err)

		reasons := policy.Evaluate(j, pro, nil, &caller, 0)

		require.Len(t, reasons, 3)
		assert.Contains(t, reasons, "no compliance record for plumbing")
		assert.Contains(t, reasons, "verification status is pending")
		assert.Contains(t, reasons[2], "exceeds allowed 50.0 km")
	})

	t.Run("records for other categories are ignored", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)
		records := []professional.ComplianceRecord{
			{Category: "electrical", Compliant: false, Reason: "license expired"},
			{Category: "plumbing", Compliant: true},
		}

		reasons := policy.Evaluate(j, pro, records, nil, 0)

		assert.Empty(t, reasons)
	})

	t.Run("distance within a custom ceiling passes", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)

		caller, err := kernel.NewGeoPoint(40.9, -74.0060) // ~21 km
		require.NoError(t, err)

		assert.Empty(t, policy.Evaluate(j, pro, compliant, &caller, 25))
		assert.Len(t, policy.Evaluate(j, pro, compliant, &caller, 10), 1)
	})

	t.Run("no caller location skips the distance check", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)

		assert.Empty(t, policy.Evaluate(j, pro, compliant, nil, 1))
	})

	t.Run("unusable caller location waives the ceiling", func(t *testing.T) {
		j := newPlumbingJob(t)
		pro := newClaimPro(t, professional.VerificationApproved)

		assert.Empty(t, policy.Evaluate(j, pro, compliant, &kernel.GeoPoint{}, 1))
	})
}
