package job

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
//
// State transitions:
//
//	requested ──(claim protocol)──> assigned ──> en_route ──> arrived ──> started ──> completed
//	     │                              │            │            │           │
//	     └──────────────────────────────┴────────────┴────────────┴───────────┴──> cancelled
//
// The requested -> assigned transition is driven externally by the claim
// protocol (Job.Assign), not by the transition table. completed and
// cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusRequested is the initial status of a newly created job,
	// waiting for a professional to claim one of its offers.
	StatusRequested

	// StatusAssigned indicates exactly one professional has claimed the job.
	StatusAssigned

	// StatusEnRoute indicates the assigned professional is traveling to the job.
	StatusEnRoute

	// StatusArrived indicates the assigned professional is on site.
	StatusArrived

	// StatusStarted indicates work is in progress. Entering this status
	// triggers the payment capture side effect.
	StatusStarted

	// StatusCompleted indicates the work is done. Terminal.
	StatusCompleted

	// StatusCancelled indicates the job was cancelled before completion. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusRequested: "requested",
		StatusAssigned:  "assigned",
		StatusEnRoute:   "en_route",
		StatusArrived:   "arrived",
		StatusStarted:   "started",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// getTransitionTable returns the allowed next statuses per current status.
// requested -> assigned is intentionally absent: assignment goes through
// the claim protocol, not a raw status update.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusRequested: {StatusCancelled},
		StatusAssigned:  {StatusEnRoute, StatusCancelled},
		StatusEnRoute:   {StatusArrived, StatusCancelled},
		StatusArrived:   {StatusStarted, StatusCancelled},
		StatusStarted:   {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown or empty values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("requested", "en_route", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AllowedNext returns the set of statuses reachable from s via the
// transition table. Terminal statuses return an empty slice.
func (s Status) AllowedNext() []Status {
	next := getTransitionTable()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// AllowedNextStrings returns AllowedNext as wire names, for client guidance
// in InvalidTransition errors.
func (s Status) AllowedNextStrings() []string {
	next := s.AllowedNext()
	out := make([]string, len(next))
	for i, n := range next {
		out[i] = n.String()
	}
	return out
}

// CanTransitionTo reports whether the table permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
