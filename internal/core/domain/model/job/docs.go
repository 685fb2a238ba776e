// Package job contains the Job aggregate and its satellites: the status
// state machine, payment status, the pricing breakdown, append-only job
// events, and ratings.
//
// A job is created by a customer in "requested" status, assigned to exactly
// one professional through the claim protocol, and then driven through
// en_route, arrived, started, and completed by the lifecycle state machine.
// Any non-terminal status may move to cancelled. Jobs are never deleted;
// cancellation is a terminal status, not removal.
package job
