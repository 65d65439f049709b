package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/coach-courier/models"
)

// UserRepository provides access to platform accounts as the messaging
// workflow sees them.
type UserRepository interface {
	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindEarliestByRoles returns the earliest-created active user carrying
	// one of the given roles, or ErrNoUserWasFound.
	FindEarliestByRoles(ctx context.Context, roles ...string) (models.User, error)

	// SetAssignedCoach pins coachID as the user's coach persona.
	SetAssignedCoach(ctx context.Context, userID, coachID int64) error

	// RecordLogin refreshes login bookkeeping for the user and reports
	// whether this was the user's first recorded login.
	RecordLogin(ctx context.Context, userID int64, at time.Time) (first bool, err error)
}

// MessageRepository persists direct messages.
type MessageRepository interface {
	// CreateMessage persists msg and returns it with server-assigned fields.
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)

	// HasMessageWithPrefix reports whether the receiver already has a message
	// whose content starts with prefix. Used by the welcome idempotency guard.
	HasMessageWithPrefix(ctx context.Context, receiverID int64, prefix string) (bool, error)
}

// NotificationRepository persists UI notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
}

// ScheduledMessageRepository persists deferred sends and drives their
// status lifecycle.
type ScheduledMessageRepository interface {
	// CreateScheduledMessage persists a new PENDING row.
	CreateScheduledMessage(ctx context.Context, sm models.ScheduledMessage) (models.ScheduledMessage, error)

	// HasActiveForReceiver reports whether a PENDING or PROCESSING row
	// already exists for the receiver.
	HasActiveForReceiver(ctx context.Context, receiverID int64) (bool, error)

	// ListDue returns up to limit PENDING rows whose scheduled_for is not
	// after now, oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.ScheduledMessage, error)

	// ClaimProcessing transitions a PENDING row to PROCESSING. Returns
	// ErrScheduledMessageNotClaimed when the row is no longer PENDING.
	ClaimProcessing(ctx context.Context, id int64) error

	// MarkSent finalizes a delivered row.
	MarkSent(ctx context.Context, id int64, at time.Time) error

	// MarkFailed records a permanent failure: status FAILED, attempt counter
	// incremented, error string stored.
	MarkFailed(ctx context.Context, id int64, cause string) error

	// Requeue returns a FAILED row to PENDING (operator action). Returns
	// ErrScheduledMessageNotFound when the row is missing or not FAILED.
	Requeue(ctx context.Context, id int64) error

	// List returns rows filtered by optional status, newest first.
	List(ctx context.Context, status string, limit int) ([]models.ScheduledMessage, error)
}

// DeliveryRepository is the trigger idempotency ledger backed by a unique
// (receiver, trigger, occurrence) constraint.
type DeliveryRepository interface {
	// RecordDelivery claims the tuple and returns the ledger row id, or
	// ErrAlreadyDelivered when the tuple is already claimed.
	RecordDelivery(ctx context.Context, receiverID int64, triggerKey, occurrenceKey string) (int64, error)

	// LinkMessage attaches the created message to a ledger row.
	LinkMessage(ctx context.Context, deliveryID, messageID int64) error
}

// LoginEventRepository persists login audit rows.
type LoginEventRepository interface {
	CreateLoginEvent(ctx context.Context, e models.LoginEvent) (models.LoginEvent, error)
}
