package offer

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the state of an offer.
//
// offered is the only live state. accepted is the single winner outcome,
// expired means the TTL ran out, superseded means another professional won
// the job first. All three non-offered states are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOffered is the initial status: the offer is live and claimable
	// until its deadline passes or the job gets claimed by someone else.
	StatusOffered

	// StatusAccepted indicates this offer won the claim race. Terminal.
	StatusAccepted

	// StatusExpired indicates the TTL ran out unclaimed. Terminal.
	StatusExpired

	// StatusSuperseded indicates a different professional claimed the job
	// while this offer was still live. Terminal.
	StatusSuperseded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusOffered:    "offered",
		StatusAccepted:   "accepted",
		StatusExpired:    "expired",
		StatusSuperseded: "superseded",
	}
}

// StatusFromString parses the wire representation of an offer status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid offer status", s))
}

// Validate checks the Status is one of the defined offer states.
func (s Status) Validate() error {
	if s < StatusOffered || s > StatusSuperseded {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the offer can no longer change state.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusExpired || s == StatusSuperseded
}
