package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// deliveryRepository is the SQL-backed implementation of [DeliveryRepository].
// The unique (receiver_id, trigger_key, occurrence_key) constraint is the
// real idempotency mechanism: the INSERT either claims the occurrence or
// reports it as already delivered.
type deliveryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeliveryRepository constructs a [DeliveryRepository] backed by the
// provided database connection and logger.
func NewDeliveryRepository(db *DB, logger *logger.Logger) DeliveryRepository {
	logger.Debug().Msg("creating delivery repository")
	return &deliveryRepository{
		db:     db,
		logger: logger,
	}
}

// RecordDelivery claims the (receiver, trigger, occurrence) tuple.
//
// Error handling:
//   - unique violation (PostgreSQL 23505 / SQLite constraint) → [ErrAlreadyDelivered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deliveryRepository) RecordDelivery(ctx context.Context, receiverID int64, triggerKey, occurrenceKey string) (int64, error) {
	log := logger.FromContext(ctx)

	if occurrenceKey == "" {
		occurrenceKey = "-"
	}

	var deliveryID int64
	row := r.db.QueryRowContext(ctx, recordDelivery, receiverID, triggerKey, occurrenceKey)
	if err := row.Scan(&deliveryID); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyDelivered
		}
		log.Err(err).Str("func", "*deliveryRepository.RecordDelivery").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deliveryID, nil
}

// LinkMessage attaches the created message to the ledger row.
func (r *deliveryRepository) LinkMessage(ctx context.Context, deliveryID, messageID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, linkDeliveryMessage, messageID, deliveryID); err != nil {
		log.Err(err).Str("func", "*deliveryRepository.LinkMessage").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
