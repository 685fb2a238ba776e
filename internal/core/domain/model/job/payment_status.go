package job

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentStatus tracks the local view of the payment hold attached to a job.
// Capture and settlement themselves are delegated to an external payment
// collaborator; this engine only flips the local flag alongside lifecycle
// transitions.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates a hold exists but has not been captured.
	PaymentPending

	// PaymentCaptured indicates the hold was captured when work started.
	PaymentCaptured

	// PaymentCompleted indicates the payment settled on job completion.
	PaymentCompleted
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCaptured:  "captured",
		PaymentCompleted: "completed",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment_status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks the PaymentStatus is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentCaptured && s != PaymentCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment_status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
