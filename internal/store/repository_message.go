package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a new message row and returns the fully populated
// [models.Message] with server-assigned fields (MessageID, CreatedAt).
func (r *messageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.Type,
		msg.AttachmentURL, msg.AttachmentType, msg.AttachmentName, msg.VoiceDuration)

	if err := row.Scan(
		&msg.MessageID,
		&msg.SenderID,
		&msg.ReceiverID,
		&msg.Content,
		&msg.Type,
		&msg.AttachmentURL,
		&msg.AttachmentType,
		&msg.AttachmentName,
		&msg.VoiceDuration,
		&msg.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return msg, nil
}

// HasMessageWithPrefix reports whether the receiver already has a message
// whose content starts with prefix. Prefixes come from the static catalog
// and contain no LIKE wildcards.
func (r *messageRepository) HasMessageWithPrefix(ctx context.Context, receiverID int64, prefix string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countMessagesWithPrefix, receiverID, prefix+"%")
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*messageRepository.HasMessageWithPrefix").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}
