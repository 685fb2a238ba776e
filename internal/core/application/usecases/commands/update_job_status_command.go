package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateJobStatusCommandIsNotConstructed = errors.New(
	"UpdateJobStatusCommand must be created via NewUpdateJobStatusCommand constructor",
)

// UpdateJobStatusCommand requests a lifecycle transition for a job.
// The optional coordinate enables the live location capture side effect on
// en_route/arrived transitions by the assigned professional.
type UpdateJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	actorID  kernel.UUID
	isAdmin  bool
	next     job.Status
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateJobStatusCommand creates a command to transition a job.
func NewUpdateJobStatusCommand(
	jobID kernel.UUID,
	actorID kernel.UUID,
	isAdmin bool,
	next job.Status,
	location *kernel.GeoPoint,
) (UpdateJobStatusCommand, error) {
	statusCommand := UpdateJobStatusCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setJobID(jobID),
		statusCommand.setActorID(actorID),
		statusCommand.setNext(next),
		statusCommand.setLocation(location),
	); err != nil {
		return UpdateJobStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobStatusCommandIsNotConstructed)
}

// JobID returns the job to transition.
func (c UpdateJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the user requesting the transition.
func (c UpdateJobStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// IsAdmin reports whether the actor carries the administrator role.
func (c UpdateJobStatusCommand) IsAdmin() bool {
	return c.isAdmin
}

// Next returns the requested target status.
func (c UpdateJobStatusCommand) Next() job.Status {
	return c.next
}

// Location returns the actor's current coordinate, or nil.
func (c UpdateJobStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdateJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateJobStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateJobStatusCommand) setNext(next job.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *UpdateJobStatusCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
