// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/models"
)

const (
	defaultBatchSize = 50
	defaultListLimit = 50
	maxListLimit     = 500
)

// validListStatuses guards the operator listing filter.
var validListStatuses = map[string]bool{
	"":                               true,
	models.ScheduledStatusPending:    true,
	models.ScheduledStatusProcessing: true,
	models.ScheduledStatusSent:       true,
	models.ScheduledStatusFailed:     true,
}

// scheduledMessageService is the concrete implementation of
// [ScheduledMessageService].
type scheduledMessageService struct {
	scheduled     store.ScheduledMessageRepository
	messages      store.MessageRepository
	notifications store.NotificationRepository

	dispatcher TriggerService

	coachCfg  config.Coach
	batchSize int

	now func() time.Time

	logger *logger.Logger
}

// NewScheduledMessageService constructs the deferred-send processor. The
// dispatcher is re-entered for rows that defer a trigger rather than a
// literal payload.
func NewScheduledMessageService(repos *store.Repositories, dispatcher TriggerService, coachCfg config.Coach, workersCfg config.Workers, logger *logger.Logger) ScheduledMessageService {
	batchSize := workersCfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &scheduledMessageService{
		scheduled:     repos.ScheduledMessageRepository,
		messages:      repos.MessageRepository,
		notifications: repos.NotificationRepository,
		dispatcher:    dispatcher,
		coachCfg:      coachCfg,
		batchSize:     batchSize,
		now:           time.Now,
		logger:        logger,
	}
}

// ProcessDue implements [ScheduledMessageService]. One poll pass: claim
// each due row, deliver it, finalize its status. A failing row never stops
// the rest of the batch.
func (s *scheduledMessageService) ProcessDue(ctx context.Context) error {
	log := logger.FromContext(ctx)

	due, err := s.scheduled.ListDue(ctx, s.now(), s.batchSize)
	if err != nil {
		return fmt.Errorf("listing due scheduled messages: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	log.Debug().Int("count", len(due)).Msg("processing due scheduled messages")
	for _, sm := range due {
		s.processOne(ctx, sm)
	}

	return nil
}

func (s *scheduledMessageService) processOne(ctx context.Context, sm models.ScheduledMessage) {
	log := logger.FromContext(ctx)

	if err := s.scheduled.ClaimProcessing(ctx, sm.ScheduledMessageID); err != nil {
		if errors.Is(err, store.ErrScheduledMessageNotClaimed) {
			log.Debug().Int64("id", sm.ScheduledMessageID).Msg("row claimed elsewhere, skipping")
			return
		}
		log.Err(err).Int64("id", sm.ScheduledMessageID).Msg("claim failed")
		return
	}

	var err error
	if name, value, ok := sm.ReplayTrigger(); ok {
		err = s.dispatcher.Dispatch(ctx, models.TriggerRequest{
			UserID:       sm.ReceiverID,
			Trigger:      name,
			TriggerValue: value,
		})
	} else {
		err = s.deliverLiteral(ctx, sm)
	}

	if err != nil {
		log.Err(err).Int64("id", sm.ScheduledMessageID).Msg("scheduled send failed")
		if markErr := s.scheduled.MarkFailed(ctx, sm.ScheduledMessageID, err.Error()); markErr != nil {
			log.Err(markErr).Int64("id", sm.ScheduledMessageID).Msg("marking row failed errored")
		}
		return
	}

	if err = s.scheduled.MarkSent(ctx, sm.ScheduledMessageID, s.now()); err != nil {
		log.Err(err).Int64("id", sm.ScheduledMessageID).Msg("marking row sent errored")
	}
}

// deliverLiteral sends a pre-rendered welcome payload: the text message,
// the voice note built from the static pre-recorded audio (never
// synthesized here), and the notification.
func (s *scheduledMessageService) deliverLiteral(ctx context.Context, sm models.ScheduledMessage) error {
	if _, err := s.messages.CreateMessage(ctx, models.Message{
		SenderID:   sm.SenderID,
		ReceiverID: sm.ReceiverID,
		Content:    sm.TextContent,
		Type:       models.MessageTypeDirect,
	}); err != nil {
		return fmt.Errorf("creating welcome message: %w", err)
	}

	if s.coachCfg.WelcomeAudioURL != "" {
		if _, err := s.messages.CreateMessage(ctx, models.Message{
			SenderID:       sm.SenderID,
			ReceiverID:     sm.ReceiverID,
			Content:        models.VoiceMessageContent,
			Type:           models.MessageTypeDirect,
			AttachmentURL:  s.coachCfg.WelcomeAudioURL,
			AttachmentType: models.AttachmentTypeVoice,
			AttachmentName: "Voice message",
			VoiceDuration:  s.coachCfg.WelcomeAudioDuration,
		}); err != nil {
			return fmt.Errorf("creating welcome voice message: %w", err)
		}
	}

	if _, err := s.notifications.CreateNotification(ctx, models.Notification{
		UserID:  sm.ReceiverID,
		Type:    models.NotificationTypeNewMessage,
		Title:   "New message",
		Message: "You have a new message from your coach",
		Payload: fmt.Sprintf(`{"sender_id":%d}`, sm.SenderID),
	}); err != nil {
		return fmt.Errorf("creating welcome notification: %w", err)
	}

	return nil
}

// List implements [ScheduledMessageService].
func (s *scheduledMessageService) List(ctx context.Context, status string, limit int) ([]models.ScheduledMessage, error) {
	if !validListStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, status)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.scheduled.List(ctx, status, limit)
}

// Requeue implements [ScheduledMessageService].
func (s *scheduledMessageService) Requeue(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDataProvided
	}

	return s.scheduled.Requeue(ctx, id)
}
