package notification_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		now := time.Now()
		userID := kernel.NewUUID()

		n, err := notification.NewNotification(
			userID, notification.TypeJobOffer, "New job nearby", "Plumbing, $90.00 payout", now)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.UserID().IsEqual(userID))
		assert.Equal(t, notification.TypeJobOffer, n.Type())
		assert.Equal(t, now, n.CreatedAt())
	})

	t.Run("empty type is rejected", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "", "title", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), notification.TypeJobOffer, "", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDefaultPreferences(t *testing.T) {
	p := notification.DefaultPreferences(kernel.NewUUID())

	assert.True(t, p.PushEnabled)
	assert.False(t, p.SMSEnabled)
	assert.True(t, p.EmailEnabled)
	assert.True(t, p.JobStatusEnabled)
	assert.True(t, p.DocumentRemindersEnabled)
}

func TestPreferences_AllowsChannel(t *testing.T) {
	p := notification.DefaultPreferences(kernel.NewUUID())

	assert.True(t, p.AllowsChannel(notification.ChannelInApp))
	assert.True(t, p.AllowsChannel(notification.ChannelPush))
	assert.False(t, p.AllowsChannel(notification.ChannelSMS))
	assert.True(t, p.AllowsChannel(notification.ChannelEmail))

	t.Run("in-app ignores opt-outs", func(t *testing.T) {
		p := notification.Preferences{UserID: kernel.NewUUID()}
		assert.True(t, p.AllowsChannel(notification.ChannelInApp))
		assert.False(t, p.AllowsChannel(notification.ChannelPush))
	})
}

func TestPreferences_AllowsType(t *testing.T) {
	p := notification.DefaultPreferences(kernel.NewUUID())
	p.JobStatusEnabled = false

	assert.False(t, p.AllowsType(notification.TypeJobStatusUpdate))
	assert.False(t, p.AllowsType(notification.TypeJobOffer))
	assert.True(t, p.AllowsType(notification.TypeDocumentExpiry))
	assert.True(t, p.AllowsType("promo_weekly"))

	p.DocumentRemindersEnabled = false
	assert.False(t, p.AllowsType(notification.TypeDocumentExpiry))
}

func TestDelivery_Succeeded(t *testing.T) {
	ok := notification.Delivery{ExternalID: "sms_ab12cd34"}
	assert.True(t, ok.Succeeded())

	failed := notification.Delivery{Failure: "provider timeout"}
	assert.False(t, failed.Succeeded())

	empty := notification.Delivery{}
	assert.False(t, empty.Succeeded())
}

func TestChannelFromString(t *testing.T) {
	for _, c := range []notification.Channel{
		notification.ChannelInApp, notification.ChannelPush,
		notification.ChannelSMS, notification.ChannelEmail,
	} {
		parsed, err := notification.ChannelFromString(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := notification.ChannelFromString("pigeon")
	require.Error(t, err)
}
