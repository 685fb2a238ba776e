package gateway

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// StubPaymentCollaborator logs payment-affecting transitions instead of
// calling a provider. The engine's payment flags are local either way;
// reconciliation happens outside.
type StubPaymentCollaborator struct {
	logger *slog.Logger
}

// NewStubPaymentCollaborator creates a payment collaborator that only logs.
func NewStubPaymentCollaborator(logger *slog.Logger) *StubPaymentCollaborator {
	return &StubPaymentCollaborator{
		logger: logger.With("component", "payment_gateway"),
	}
}

// Capture records a capture request for the job's pending hold.
func (p *StubPaymentCollaborator) Capture(_ context.Context, jobID kernel.UUID) error {
	p.logger.Info("payment capture requested", "job_id", jobID.String())
	return nil
}

// MarkCompleted records the job's completion with the provider.
func (p *StubPaymentCollaborator) MarkCompleted(_ context.Context, jobID kernel.UUID) error {
	p.logger.Info("payment completion reported", "job_id", jobID.String())
	return nil
}
