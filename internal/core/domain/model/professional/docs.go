// Package professional contains the Professional aggregate: the field
// worker who receives offers and executes jobs. Eligibility for matching
// and claiming is computed over its services, online flag, verification
// status, and last known location.
package professional
