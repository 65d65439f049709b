package models

import "time"

// NotificationTypeNewMessage is emitted alongside every auto-message so
// the UI can surface an unread-message badge.
const NotificationTypeNewMessage = "new_message"

// Notification is a UI notification record. The messaging workflow only
// writes them; consumption belongs to the platform frontend.
type Notification struct {
	NotificationID int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`

	// Message is the short human-readable notification text.
	Message string `json:"message"`

	// Payload is an opaque JSON document; for new_message notifications
	// it carries the sender id.
	Payload string `json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}
