package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/professional"
)

// ComplianceOracle is the external collaborator owning per-trade compliance.
// It recomputes records on document and identity events outside this engine.
type ComplianceOracle interface {
	// GetCompliance retrieves the compliance records of a professional for
	// the given categories. Missing records are simply absent from the
	// result; the claim policy reports them as gaps.
	GetCompliance(ctx context.Context, proID kernel.UUID, categories []string) ([]professional.ComplianceRecord, error)
}

// DeliveryResult is the outcome of one external delivery attempt.
type DeliveryResult struct {
	Delivered  bool
	ExternalID string
	Error      string
}

// Deliverer is the external delivery collaborator for one channel family.
// The engine never talks to a push/SMS/email provider directly.
type Deliverer interface {
	// Deliver hands a message to the channel's provider. A non-nil error
	// means the provider was unreachable; a reachable provider that
	// refuses the message reports through DeliveryResult.Error instead.
	Deliver(
		ctx context.Context,
		channel notification.Channel,
		userID kernel.UUID,
		title, body string,
		data map[string]string,
	) (DeliveryResult, error)
}

// PaymentCollaborator is told about payment-affecting transitions.
// Reconciliation of the remote outcome is outside this engine: the local
// payment flag flips with the transition, not with the remote confirmation.
type PaymentCollaborator interface {
	// Capture asks the provider to capture the pending hold for a job.
	Capture(ctx context.Context, jobID kernel.UUID) error

	// MarkCompleted tells the provider the job finished.
	MarkCompleted(ctx context.Context, jobID kernel.UUID) error
}
