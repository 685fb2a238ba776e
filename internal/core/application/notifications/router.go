package notifications

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// Config holds the deployment-level channel feature flags. A disabled flag
// silences the channel for every user regardless of their preferences.
type Config struct {
	PushEnabled  bool
	SMSEnabled   bool
	EmailEnabled bool
}

// Event is one routable message for one user. Channels lists the requested
// external channels; the in-app record is implied and never gated.
type Event struct {
	UserID   kernel.UUID
	Type     string
	Title    string
	Body     string
	Channels []notification.Channel
	Data     map[string]string
}

// Router decides and records the fate of each requested channel.
type Router struct {
	repo      ports.NotificationRepository
	deliverer ports.Deliverer
	config    Config
	logger    *slog.Logger
}

// NewRouter creates a Router over the notification store and the external
// delivery collaborator.
func NewRouter(
	repo ports.NotificationRepository,
	deliverer ports.Deliverer,
	config Config,
	logger *slog.Logger,
) *Router {
	return &Router{
		repo:      repo,
		deliverer: deliverer,
		config:    config,
		logger:    logger.With("component", "notification_router"),
	}
}

// Notify routes one event. It never returns an error: failures are logged
// and recorded, and a failure on one channel does not stop the others.
func (r *Router) Notify(ctx context.Context, event Event) {
	record, err := notification.NewNotification(
		event.UserID, event.Type, event.Title, event.Body, time.Now())
	if err != nil {
		r.logger.Error("invalid notification event", "type", event.Type, "error", err)
		return
	}

	if err = r.repo.Add(ctx, record); err != nil {
		r.logger.Error("failed to store in-app notification",
			"user_id", event.UserID.String(), "type", event.Type, "error", err)
		return
	}

	prefs, err := r.repo.GetPreferences(ctx, event.UserID)
	if err != nil {
		r.logger.Warn("failed to load preferences, using defaults",
			"user_id", event.UserID.String(), "error", err)
		prefs = notification.DefaultPreferences(event.UserID)
	}

	for _, channel := range event.Channels {
		if channel == notification.ChannelInApp {
			continue
		}
		if !r.flagEnabled(channel) {
			continue
		}
		if !prefs.AllowsChannel(channel) || !prefs.AllowsType(event.Type) {
			continue
		}

		r.deliver(ctx, record, channel, event)
	}
}

func (r *Router) flagEnabled(channel notification.Channel) bool {
	switch channel {
	case notification.ChannelPush:
		return r.config.PushEnabled
	case notification.ChannelSMS:
		return r.config.SMSEnabled
	case notification.ChannelEmail:
		return r.config.EmailEnabled
	default:
		return false
	}
}

func (r *Router) deliver(
	ctx context.Context,
	record *notification.Notification,
	channel notification.Channel,
	event Event,
) {
	delivery := notification.Delivery{
		NotificationID: record.ID(),
		Channel:        channel,
		AttemptedAt:    time.Now(),
	}

	result, err := r.deliverer.Deliver(ctx, channel, event.UserID, event.Title, event.Body, event.Data)
	switch {
	case err != nil:
		delivery.Failure = err.Error()
		r.logger.Warn("delivery collaborator unreachable",
			"channel", channel.String(), "user_id", event.UserID.String(), "error", err)
	case !result.Delivered:
		delivery.Failure = result.Error
		r.logger.Warn("delivery refused",
			"channel", channel.String(), "user_id", event.UserID.String(), "reason", result.Error)
	default:
		delivery.ExternalID = result.ExternalID
	}

	if err = r.repo.AddDelivery(ctx, delivery); err != nil {
		r.logger.Error("failed to record delivery outcome",
			"channel", channel.String(), "notification_id", record.ID().String(), "error", err)
	}
}
