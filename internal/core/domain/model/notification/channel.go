package notification

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Channel is a delivery medium for a notification.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelInApp is the in-app feed. It is not gated by flags or
	// preferences: every routed notification lands here.
	ChannelInApp

	// ChannelPush is mobile push delivery.
	ChannelPush

	// ChannelSMS is text message delivery.
	ChannelSMS

	// ChannelEmail is email delivery.
	ChannelEmail
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown: "unknown",
		ChannelInApp:   "in_app",
		ChannelPush:    "push",
		ChannelSMS:     "sms",
		ChannelEmail:   "email",
	}
}

// ChannelFromString parses the wire representation of a channel.
func ChannelFromString(s string) (Channel, error) {
	for channel, str := range getChannelStrings() {
		if str == s && channel != ChannelUnknown {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel", fmt.Errorf("%q is not a valid channel", s))
}

// Validate checks the Channel is one of the defined delivery media.
func (c Channel) Validate() error {
	if c < ChannelInApp || c > ChannelEmail {
		return errs.NewValueIsInvalidErrorWithCause(
			"channel", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the wire name of the channel. Implements fmt.Stringer.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "unknown"
}
