package notification

import (
	"strings"

	"dispatch/internal/core/domain/model/kernel"
)

// Preferences are the per-user notification gates. A user with no stored
// row gets DefaultPreferences: push and email on, sms off, both categories on.
type Preferences struct {
	UserID kernel.UUID

	PushEnabled  bool
	SMSEnabled   bool
	EmailEnabled bool

	JobStatusEnabled         bool
	DocumentRemindersEnabled bool
}

// DefaultPreferences returns the gates applied to users who never saved any.
func DefaultPreferences(userID kernel.UUID) Preferences {
	return Preferences{
		UserID:                   userID,
		PushEnabled:              true,
		SMSEnabled:               false,
		EmailEnabled:             true,
		JobStatusEnabled:         true,
		DocumentRemindersEnabled: true,
	}
}

// AllowsChannel reports whether the user opted into the given external
// channel. The in-app channel is always allowed.
func (p Preferences) AllowsChannel(channel Channel) bool {
	switch channel {
	case ChannelInApp:
		return true
	case ChannelPush:
		return p.PushEnabled
	case ChannelSMS:
		return p.SMSEnabled
	case ChannelEmail:
		return p.EmailEnabled
	default:
		return false
	}
}

// AllowsType reports whether the user opted into the notification's
// category. Types outside the two known categories are ungated.
func (p Preferences) AllowsType(notifType string) bool {
	switch {
	case strings.HasPrefix(notifType, "document_"):
		return p.DocumentRemindersEnabled
	case strings.HasPrefix(notifType, "job_"):
		return p.JobStatusEnabled
	default:
		return true
	}
}
