package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

// notificationRepository is the SQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotification persists a new notification row and returns the fully
// populated [models.Notification] with server-assigned fields.
func (r *notificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification, n.UserID, n.Type, n.Title, n.Message, n.Payload)

	if err := row.Scan(
		&n.NotificationID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Payload,
		&n.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error: scanning error")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return n, nil
}
