package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a customer's request to post a new job.
// The price is not part of the command: it is composed from the service
// catalog entry at handling time.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	customerID  kernel.UUID
	serviceCode string
	location    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job. Validates the
// ids, the service code, and the job site coordinate.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	serviceCode string,
	location kernel.GeoPoint,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setCustomerID(customerID),
		jobCommand.setServiceCode(serviceCode),
		jobCommand.setLocation(location),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier the new job will carry.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the requester's identifier.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceCode returns the requested service category.
func (c CreateJobCommand) ServiceCode() string {
	return c.serviceCode
}

// Location returns the job site coordinate.
func (c CreateJobCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setServiceCode(serviceCode string) error {
	if serviceCode == "" {
		return errs.NewValueIsRequiredError("service_code")
	}

	c.serviceCode = serviceCode
	return nil
}

func (c *CreateJobCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
