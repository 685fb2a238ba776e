package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRateJobCommandIsNotConstructed = errors.New(
	"RateJobCommand must be created via NewRateJobCommand constructor",
)

// RateJobCommand is a customer's rating of a completed job. Resubmission
// overwrites the previous rating for the same job and customer.
type RateJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID
	score      int
	comment    string

	guard guard.ConstructorGuard
}

// NewRateJobCommand creates a command to rate a job.
func NewRateJobCommand(jobID, customerID kernel.UUID, score int, comment string) (RateJobCommand, error) {
	rateCommand := RateJobCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rateCommand.setJobID(jobID),
		rateCommand.setCustomerID(customerID),
		rateCommand.setScore(score),
	); err != nil {
		return RateJobCommand{}, err
	}

	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RateJobCommand) Validate() error {
	return c.guard.Validate(ErrRateJobCommandIsNotConstructed)
}

// JobID returns the job being rated.
func (c RateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the rating author.
func (c RateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Score returns the star score.
func (c RateJobCommand) Score() int {
	return c.score
}

// Comment returns the optional free-text comment.
func (c RateJobCommand) Comment() string {
	return c.comment
}

func (c *RateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RateJobCommand) setScore(score int) error {
	if score < job.RatingMin || score > job.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", score, job.RatingMin, job.RatingMax)
	}

	c.score = score
	return nil
}
