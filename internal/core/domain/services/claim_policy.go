package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/professional"
)

// DefaultClaimDistanceKm is the claim distance ceiling used when the caller
// does not supply one.
const DefaultClaimDistanceKm = 50.0

// ClaimPolicy evaluates the soft claim preconditions for accepting an offer.
//
// Reasons accumulate rather than short-circuit, so the caller sees every gap
// in one response: per-category compliance (missing records and non-compliant
// records are both reported), overall verification, and the optional distance
// ceiling when both caller and job carry coordinates.
//
// Hard preconditions (offer exists, offer still claimable, job still open)
// are the accept handler's concern, not this policy's.
type ClaimPolicy struct{}

// NewClaimPolicy creates a new ClaimPolicy instance.
func NewClaimPolicy() ClaimPolicy {
	return ClaimPolicy{}
}

// Evaluate returns the accumulated claim-blocking reasons, empty when the
// claim may proceed. callerLocation may be nil; maxDistanceKm <= 0 means
// DefaultClaimDistanceKm.
func (p ClaimPolicy) Evaluate(
	j *job.Job,
	pro *professional.Professional,
	records []professional.ComplianceRecord,
	callerLocation *kernel.GeoPoint,
	maxDistanceKm float64,
) []string {
	var reasons []string

	reasons = append(reasons, p.complianceReasons(j.ServiceCode(), records)...)

	if !pro.IsVerified() {
		reasons = append(reasons, "verification status is "+pro.VerificationStatus().String())
	}

	if callerLocation != nil {
		if maxDistanceKm <= 0 {
			maxDistanceKm = DefaultClaimDistanceKm
		}
		// A coordinate that fails validation is treated as no usable
		// location, which waives the ceiling like a nil callerLocation.
		if d, err := callerLocation.DistanceKm(j.Location()); err == nil && d > maxDistanceKm {
			reasons = append(reasons,
				fmt.Sprintf("distance %.1f km exceeds allowed %.1f km", d, maxDistanceKm))
		}
	}

	return reasons
}

func (p ClaimPolicy) complianceReasons(category string, records []professional.ComplianceRecord) []string {
	var reasons []string
	found := false

	for _, rec := range records {
		if rec.Category != category {
			continue
		}
		found = true
		if !rec.Compliant {
			reason := "not compliant for " + rec.Category
			if rec.Reason != "" {
				reason += ": " + rec.Reason
			}
			reasons = append(reasons, reason)
		}
	}

	if !found {
		reasons = append(reasons, "no compliance record for "+category)
	}
	return reasons
}
