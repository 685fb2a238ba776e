// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors live here.
//
// Validation errors used by value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// The caller-facing taxonomy of the dispatch core:
//   - ForbiddenError: authenticated but not permitted for the resource
//   - ConflictError: compliance gaps, claim races, duplicate claims;
//     carries an accumulated reason list
//   - InvalidTransitionError: status change not in the lifecycle table;
//     carries the allowed-next set for client guidance
//   - UpstreamError: a store or collaborator call failed unexpectedly
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where it applies
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
