package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/ports"
)

// CreateJobCommandHandler handles the business logic for posting a job.
// Resolves the service against the catalog, composes the price from its base
// price and diagnostic fee, and persists the job in requested status with
// its first audit event.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	catalog    ports.ServiceCatalog
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory, catalog ports.ServiceCatalog) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the job creation command. Returns an ObjectNotFound error
// when the service code is unknown or inactive.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	service, err := h.catalog.GetActive(ctx, cmd.ServiceCode())
	if err != nil {
		return err
	}

	pricing, err := job.NewPricing(service.PriceCents())
	if err != nil {
		return err
	}

	location := cmd.Location()
	newJob, err := job.NewJob(cmd.JobID(), cmd.CustomerID(), cmd.ServiceCode(), location, pricing)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	if err = jobRepo.Add(ctx, newJob); err != nil {
		return err
	}

	event, err := job.NewEvent(
		newJob.ID(), cmd.CustomerID(), job.StatusRequested.String(), &location, nil, time.Now())
	if err != nil {
		return err
	}
	if err = jobRepo.AddEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
