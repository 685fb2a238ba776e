package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

// NotificationRepository persists in-app records, per-channel delivery
// outcomes, and per-user preferences.
type NotificationRepository interface {
	// Add persists a new in-app notification record.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// AddDelivery records one external channel attempt against its
	// notification record.
	AddDelivery(ctx context.Context, delivery notification.Delivery) error

	// GetPreferences retrieves the user's notification preferences.
	// Users without a stored row get notification.DefaultPreferences.
	GetPreferences(ctx context.Context, userID kernel.UUID) (notification.Preferences, error)
}
