package professional

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// VerificationStatus is the outcome of the professional's identity review.
// Only approved professionals may claim offers.
type VerificationStatus int

const (
	// VerificationUnknown represents an invalid or undefined status.
	VerificationUnknown VerificationStatus = iota

	// VerificationPending means the review has not concluded yet.
	VerificationPending

	// VerificationApproved means the professional may claim offers.
	VerificationApproved

	// VerificationRejected means the review failed.
	VerificationRejected
)

func getVerificationStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		VerificationUnknown:  "unknown",
		VerificationPending:  "pending",
		VerificationApproved: "approved",
		VerificationRejected: "rejected",
	}
}

// VerificationStatusFromString parses the wire representation.
func VerificationStatusFromString(s string) (VerificationStatus, error) {
	for status, str := range getVerificationStrings() {
		if str == s && status != VerificationUnknown {
			return status, nil
		}
	}
	return VerificationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"verification_status", fmt.Errorf("%q is not a valid verification status", s))
}

// Validate checks the status is one of the defined review outcomes.
func (s VerificationStatus) Validate() error {
	if s < VerificationPending || s > VerificationRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"verification_status", fmt.Errorf("%d is not a valid verification status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s VerificationStatus) String() string {
	if str, ok := getVerificationStrings()[s]; ok {
		return str
	}
	return "unknown"
}
