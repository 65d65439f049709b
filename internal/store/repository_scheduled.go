// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

// scheduledMessageRepository is the SQL-backed implementation of
// [ScheduledMessageRepository]. It owns the PENDING → PROCESSING →
// SENT/FAILED status lifecycle of deferred sends.
type scheduledMessageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScheduledMessageRepository constructs a [ScheduledMessageRepository]
// backed by the provided database connection and logger.
func NewScheduledMessageRepository(db *DB, logger *logger.Logger) ScheduledMessageRepository {
	logger.Debug().Msg("creating scheduled message repository")
	return &scheduledMessageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateScheduledMessage persists a new PENDING row and returns the fully
// populated [models.ScheduledMessage] with server-assigned fields.
func (r *scheduledMessageRepository) CreateScheduledMessage(ctx context.Context, sm models.ScheduledMessage) (models.ScheduledMessage, error) {
	log := logger.FromContext(ctx)

	if sm.Status == "" {
		sm.Status = models.ScheduledStatusPending
	}

	row := r.db.QueryRowContext(ctx, createScheduledMessage,
		sm.SenderID, sm.ReceiverID, sm.Kind, sm.TextContent, sm.VoiceScript,
		sm.TriggerName, sm.TriggerValue, sm.ScheduledFor, sm.Status)

	saved, err := scanScheduledMessage(row)
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.CreateScheduledMessage").Msg("error: scanning error")
		return models.ScheduledMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// HasActiveForReceiver reports whether a PENDING or PROCESSING row already
// exists for the receiver. This backs the welcome idempotency guard.
func (r *scheduledMessageRepository) HasActiveForReceiver(ctx context.Context, receiverID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countActiveScheduledForReceiver, receiverID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.HasActiveForReceiver").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}

// ListDue returns up to limit PENDING rows due at or before now, oldest
// first, so a backlog drains in schedule order.
func (r *scheduledMessageRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]models.ScheduledMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDueScheduledMessages, now, limit)
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.ListDue").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return collectScheduledMessages(rows)
}

// ClaimProcessing transitions a PENDING row to PROCESSING. The guarded
// UPDATE makes the claim a single-row compare-and-set: a second concurrent
// poll sees zero affected rows and backs off.
func (r *scheduledMessageRepository) ClaimProcessing(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, claimScheduledMessage, id)
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.ClaimProcessing").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrScheduledMessageNotClaimed
	}

	return nil
}

// MarkSent finalizes a delivered row with the delivery timestamp.
func (r *scheduledMessageRepository) MarkSent(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markScheduledMessageSent, at, id); err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.MarkSent").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// MarkFailed records a permanent failure. The row stays FAILED until an
// operator requeues it; there is no automatic retry.
func (r *scheduledMessageRepository) MarkFailed(ctx context.Context, id int64, cause string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markScheduledMessageFailed, cause, id); err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.MarkFailed").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Requeue returns a FAILED row to PENDING so the next poll picks it up.
func (r *scheduledMessageRepository) Requeue(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, requeueScheduledMessage, id)
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.Requeue").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrScheduledMessageNotFound
	}

	return nil
}

// List returns rows filtered by optional status, newest first. The query is
// built with squirrel because the status filter is optional.
func (r *scheduledMessageRepository) List(ctx context.Context, status string, limit int) ([]models.ScheduledMessage, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("scheduled_message_id", "sender_id", "receiver_id", "kind", "text_content", "voice_script",
			"trigger_name", "trigger_value", "scheduled_for", "status", "attempts", "last_error", "sent_at", "created_at").
		From("scheduled_messages").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scheduledMessageRepository.List").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return collectScheduledMessages(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScheduledMessage(row rowScanner) (models.ScheduledMessage, error) {
	var sm models.ScheduledMessage
	err := row.Scan(
		&sm.ScheduledMessageID,
		&sm.SenderID,
		&sm.ReceiverID,
		&sm.Kind,
		&sm.TextContent,
		&sm.VoiceScript,
		&sm.TriggerName,
		&sm.TriggerValue,
		&sm.ScheduledFor,
		&sm.Status,
		&sm.Attempts,
		&sm.LastError,
		&sm.SentAt,
		&sm.CreatedAt,
	)
	return sm, err
}

func collectScheduledMessages(rows *sql.Rows) ([]models.ScheduledMessage, error) {
	items := make([]models.ScheduledMessage, 0)
	for rows.Next() {
		sm, err := scanScheduledMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		items = append(items, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return items, nil
}
