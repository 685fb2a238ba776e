// Package notifyrepo provides data transfer objects and mapping functions
// for notification records, delivery outcomes, and per-user preferences.
package notifyrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the in-app record created for every routed
// message.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Type      string    ``
	Title     string    ``
	Body      string    ``
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// DeliveryDTO records one external channel attempt for a notification.
type DeliveryDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	NotificationID uuid.UUID `gorm:"type:uuid;index"`
	Channel        string    ``
	ExternalID     string    ``
	Failure        string    ``
	AttemptedAt    time.Time ``
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "notification_deliveries"
}

// PreferencesDTO stores a user's notification gates. Users without a row
// fall back to notification.DefaultPreferences.
type PreferencesDTO struct {
	UserID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PushEnabled              bool      ``
	SMSEnabled               bool      `gorm:"column:sms_enabled"`
	EmailEnabled             bool      ``
	JobStatusEnabled         bool      ``
	DocumentRemindersEnabled bool      ``
}

// TableName specifies the database table name for preference entities.
func (PreferencesDTO) TableName() string {
	return "notification_preferences"
}

// fromDomain converts a notification record to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Type:      aggregate.Type(),
		Title:     aggregate.Title(),
		Body:      aggregate.Body(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// deliveryFromDomain converts a delivery outcome to its database representation.
func deliveryFromDomain(delivery notification.Delivery) DeliveryDTO {
	return DeliveryDTO{
		NotificationID: delivery.NotificationID.Bytes(),
		Channel:        delivery.Channel.String(),
		ExternalID:     delivery.ExternalID,
		Failure:        delivery.Failure,
		AttemptedAt:    delivery.AttemptedAt,
	}
}

// preferencesToDomain converts a database DTO to domain preferences.
func preferencesToDomain(dto PreferencesDTO) (notification.Preferences, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return notification.Preferences{}, err
	}

	return notification.Preferences{
		UserID:                   userID,
		PushEnabled:              dto.PushEnabled,
		SMSEnabled:               dto.SMSEnabled,
		EmailEnabled:             dto.EmailEnabled,
		JobStatusEnabled:         dto.JobStatusEnabled,
		DocumentRemindersEnabled: dto.DocumentRemindersEnabled,
	}, nil
}
