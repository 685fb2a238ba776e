package notifyrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
// Notifications are routed best effort outside command transactions, so the
// repository runs on the main connection rather than a unit of work.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists a new in-app notification record.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddDelivery records one external channel attempt.
func (r *GormNotificationRepository) AddDelivery(ctx context.Context, delivery notification.Delivery) error {
	dto := deliveryFromDomain(delivery)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPreferences retrieves the user's notification gates, falling back to
// the defaults when the user never saved any.
func (r *GormNotificationRepository) GetPreferences(
	ctx context.Context,
	userID kernel.UUID,
) (notification.Preferences, error) {
	if err := userID.Validate(); err != nil {
		return notification.Preferences{}, err
	}

	var dto PreferencesDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notification.DefaultPreferences(userID), nil
		}
		return notification.Preferences{}, err
	}

	return preferencesToDomain(dto)
}

// SavePreferences stores the user's notification gates, overwriting any
// previous row.
func (r *GormNotificationRepository) SavePreferences(
	ctx context.Context,
	prefs notification.Preferences,
) error {
	if err := prefs.UserID.Validate(); err != nil {
		return err
	}

	dto := PreferencesDTO{
		UserID:                   prefs.UserID.Bytes(),
		PushEnabled:              prefs.PushEnabled,
		SMSEnabled:               prefs.SMSEnabled,
		EmailEnabled:             prefs.EmailEnabled,
		JobStatusEnabled:         prefs.JobStatusEnabled,
		DocumentRemindersEnabled: prefs.DocumentRemindersEnabled,
	}

	return r.db.WithContext(ctx).Save(&dto).Error
}
