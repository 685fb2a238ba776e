package services

import (
	"dispatch/internal/core/domain/model/professional"
)

// Candidate is one eligible professional together with the distance to the
// job site, when known.
type Candidate struct {
	Pro        *professional.Professional
	DistanceKm *float64
}

// CandidateSet is the result of an eligibility selection. The two
// implementations are distinct on purpose: callers that care about offer
// ordering can tell a ranked result from the degraded fallback.
type CandidateSet interface {
	Candidates() []Candidate
	IsRanked() bool
}

// RankedCandidates is the primary selection result: candidates ordered by
// rating descending, distance ascending, id ascending.
type RankedCandidates []Candidate

// Candidates returns the candidates in rank order.
func (r RankedCandidates) Candidates() []Candidate { return r }

// IsRanked reports true.
func (r RankedCandidates) IsRanked() bool { return true }

// UnrankedCandidates is the degraded fallback result: category-matching,
// online, compliant professionals without usable locations, unordered and
// capped. An empty set means no match, not a failure.
type UnrankedCandidates []Candidate

// Candidates returns the candidates in no particular order.
func (u UnrankedCandidates) Candidates() []Candidate { return u }

// IsRanked reports false.
func (u UnrankedCandidates) IsRanked() bool { return false }
