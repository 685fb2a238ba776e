// Package gateway contains stub implementations of the external
// collaborators: message delivery providers and the payment service.
// They log each call and return synthetic identifiers, standing in for
// real provider SDKs until those are wired up.
package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// StubDeliverer simulates push, sms, and email providers. Every attempt
// succeeds and yields a synthetic external id prefixed with the channel,
// e.g. "sms_ab12cd34".
type StubDeliverer struct {
	logger *slog.Logger
}

// NewStubDeliverer creates a deliverer that logs instead of sending.
func NewStubDeliverer(logger *slog.Logger) *StubDeliverer {
	return &StubDeliverer{
		logger: logger.With("component", "delivery_gateway"),
	}
}

// Deliver pretends to hand the message to the channel's provider.
func (d *StubDeliverer) Deliver(
	_ context.Context,
	channel notification.Channel,
	userID kernel.UUID,
	title, _ string,
	_ map[string]string,
) (ports.DeliveryResult, error) {
	externalID := channel.String() + "_" + randomSuffix()

	d.logger.Info("message delivered",
		"channel", channel.String(),
		"user_id", userID.String(),
		"title", title,
		"external_id", externalID)

	return ports.DeliveryResult{
		Delivered:  true,
		ExternalID: externalID,
	}, nil
}

func randomSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b[:])
}
