package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
// Every constructed error in this package unwraps to one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value was absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenError indicates the caller is authenticated but not permitted
// to act on the resource.
type ForbiddenError struct {
	Reason string
}

// NewForbiddenError creates a ForbiddenError with a human-readable reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError indicates the operation cannot proceed in the current state:
// compliance gaps, an already-assigned job, or a duplicate claim. Reasons
// accumulate so the caller sees every gap in one response.
type ConflictError struct {
	Message string
	Reasons []string
}

// NewConflictError creates a ConflictError with an optional list of reasons.
func NewConflictError(message string, reasons ...string) *ConflictError {
	return &ConflictError{Message: message, Reasons: reasons}
}

func (e *ConflictError) Error() string {
	if len(e.Reasons) > 0 {
		return sanitize(fmt.Sprintf("%s: %s (%s)", ErrConflict, e.Message, strings.Join(e.Reasons, "; ")))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Message))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError indicates a status change not present in the
// lifecycle transition table. AllowedNext carries the set of statuses the
// client may legally request from the current one.
type InvalidTransitionError struct {
	From        string
	To          string
	AllowedNext []string
}

// NewInvalidTransitionError creates an InvalidTransitionError with the allowed-next set.
func NewInvalidTransitionError(from, to string, allowedNext []string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, AllowedNext: allowedNext}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: from %s to %s, valid next: [%s]",
		ErrInvalidTransition, e.From, e.To, strings.Join(e.AllowedNext, ", ")))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UpstreamError indicates a store or collaborator call failed unexpectedly.
// The underlying message is retained for diagnostics, never swallowed.
type UpstreamError struct {
	Collaborator string
	Cause        error
}

// NewUpstreamError creates an UpstreamError naming the failed collaborator.
func NewUpstreamError(collaborator string, cause error) *UpstreamError {
	return &UpstreamError{Collaborator: collaborator, Cause: cause}
}

func (e *UpstreamError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamUnavailable, e.Collaborator, e.Cause))
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamUnavailable
}
