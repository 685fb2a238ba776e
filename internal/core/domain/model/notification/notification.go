package notification

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Notification type names used across the engine.
const (
	TypeJobOffer        = "job_offer"
	TypeJobAssigned     = "job_assigned"
	TypeJobStatusUpdate = "job_status_update"
	TypeDocumentExpiry  = "document_expiry_reminder"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification constructors")

// Notification is the in-app record created for every routed message,
// regardless of which external channels end up delivering it.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	notifType string
	title     string
	body      string
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an in-app record for a user.
func NewNotification(userID kernel.UUID, notifType, title, body string, now time.Time) (*Notification, error) {
	n := &Notification{isConstructed: true}

	if err := errors.Join(
		n.setUserID(userID),
		n.setType(notifType),
		n.setTitle(title),
	); err != nil {
		return nil, err
	}

	n.id = kernel.NewUUID()
	n.body = body
	n.createdAt = now
	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	notifType, title, body string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		n.setUserID(userID),
		n.setType(notifType),
		n.setTitle(title),
	); err != nil {
		return nil, err
	}

	n.id = id
	n.body = body
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the recipient.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// Type returns the notification type name.
func (n *Notification) Type() string { return n.notifType }

// Title returns the short headline.
func (n *Notification) Title() string { return n.title }

// Body returns the message text.
func (n *Notification) Body() string { return n.body }

// CreatedAt returns when the record was routed.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.userID = id
	return nil
}

func (n *Notification) setType(notifType string) error {
	if notifType == "" {
		return errs.NewValueIsRequiredError("type")
	}
	n.notifType = notifType
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

// Delivery records one external channel attempt for a notification:
// either the provider's external id or the failure message.
type Delivery struct {
	NotificationID kernel.UUID
	Channel        Channel
	ExternalID     string
	Failure        string
	AttemptedAt    time.Time
}

// Succeeded reports whether the channel attempt produced an external id.
func (d Delivery) Succeeded() bool {
	return d.Failure == "" && d.ExternalID != ""
}
