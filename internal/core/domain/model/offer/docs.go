// Package offer contains the Offer aggregate and the Assignment binding
// artifact of the claim protocol.
//
// An offer is a time-bounded proposal of a specific job to a specific
// professional, created by match fan-out with a 30-minute TTL. Expiry is
// enforced lazily: an offer whose deadline passed is never claimable no
// matter what its stored status says. At most one offer per job ever
// becomes accepted; the store's uniqueness constraint on the assignment's
// job id is what decides the race.
package offer
