package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMatchJobCommandIsNotConstructed = errors.New(
	"MatchJobCommand must be created via NewMatchJobCommand constructor",
)

// MatchJobCommand triggers eligibility selection and offer fan-out for a job.
type MatchJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewMatchJobCommand creates a command to fan out offers for a job.
// radiusKm = 0 means the default match radius.
func NewMatchJobCommand(jobID kernel.UUID, radiusKm float64) (MatchJobCommand, error) {
	matchCommand := MatchJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		matchCommand.setJobID(jobID),
		matchCommand.setRadiusKm(radiusKm),
	); err != nil {
		return MatchJobCommand{}, err
	}

	return matchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchJobCommand) Validate() error {
	return c.guard.Validate(ErrMatchJobCommandIsNotConstructed)
}

// JobID returns the job to match.
func (c MatchJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// RadiusKm returns the match radius, 0 meaning the default.
func (c MatchJobCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *MatchJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *MatchJobCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm < 0 {
		return errs.NewValueIsInvalidError("radius cannot be negative")
	}

	c.radiusKm = radiusKm
	return nil
}
