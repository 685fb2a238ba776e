package services

import (
	"sort"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/professional"
)

// DefaultRadiusKm is the match radius used when the caller does not
// supply one.
const DefaultRadiusKm = 50.0

// FallbackCandidateLimit caps the degraded, unranked selection path.
const FallbackCandidateLimit = 5

// EligibilityFilter selects the candidate professionals for a job.
//
// A professional is eligible when the job's service category is in their
// service list, they are online, they are compliant for the category, and
// their last known location lies within the radius of the job site.
//
// Professionals with a known location are ranked by rating descending,
// then distance ascending, with ties broken by id for determinism. When no
// candidate has a usable location the filter degrades to an unranked,
// size-capped set of professionals passing the attribute checks alone.
type EligibilityFilter struct{}

// NewEligibilityFilter creates a new EligibilityFilter instance.
func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// Select returns the candidate set for the job. compliantIDs holds the ids
// (kernel.UUID String form) of professionals compliant for the job's
// category; radiusKm <= 0 means DefaultRadiusKm. An empty result is a valid
// "no match" outcome.
func (f EligibilityFilter) Select(
	j *job.Job,
	pros []*professional.Professional,
	compliantIDs map[string]bool,
	radiusKm float64,
) (CandidateSet, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	var ranked []Candidate
	var fallback []Candidate

	for _, p := range pros {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.HasService(j.ServiceCode()) || !p.IsOnline() || !compliantIDs[p.ID().String()] {
			continue
		}

		distance := p.DistanceTo(j.Location())
		if distance == nil {
			fallback = append(fallback, Candidate{Pro: p})
			continue
		}
		if *distance > radiusKm {
			continue
		}

		ranked = append(ranked, Candidate{Pro: p, DistanceKm: distance})
	}

	if len(ranked) > 0 {
		sort.SliceStable(ranked, func(i, k int) bool {
			a, b := ranked[i], ranked[k]
			if a.Pro.RatingAverage() != b.Pro.RatingAverage() {
				return a.Pro.RatingAverage() > b.Pro.RatingAverage()
			}
			if *a.DistanceKm != *b.DistanceKm {
				return *a.DistanceKm < *b.DistanceKm
			}
			return a.Pro.ID().String() < b.Pro.ID().String()
		})
		return RankedCandidates(ranked), nil
	}

	if len(fallback) > FallbackCandidateLimit {
		fallback = fallback[:FallbackCandidateLimit]
	}
	return UnrankedCandidates(fallback), nil
}
