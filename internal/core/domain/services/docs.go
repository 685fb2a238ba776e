// Package services provides domain services that coordinate business rules
// across multiple aggregates in the dispatch engine.
//
// The package includes:
//   - EligibilityFilter: selects and ranks candidate professionals for a job
//   - ClaimPolicy: evaluates the claim preconditions for an offer accept
//
// Both services are pure: they take aggregates and read-only inputs and
// never touch storage themselves.
package services
