// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/MKhiriev/coach-courier/internal/adapter"
	"github.com/MKhiriev/coach-courier/internal/catalog"
	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/google/uuid"
)

// Welcome delay bounds: the first-login voice note arrives 2-3 minutes
// after the login, so it reads as the coach noticing the new student
// rather than an instant bot reply.
const (
	welcomeDelayMin  = 120 * time.Second
	welcomeDelaySpan = 61 // seconds, inclusive upper bound 180s

	// welcomePrefixLen caps the content prefix used by the legacy welcome
	// dedup guard.
	welcomePrefixLen = 32
)

// triggerService is the concrete implementation of [TriggerService].
type triggerService struct {
	users         store.UserRepository
	messages      store.MessageRepository
	notifications store.NotificationRepository
	scheduled     store.ScheduledMessageRepository
	deliveries    store.DeliveryRepository

	tts   adapter.VoiceSynthesizer
	audio adapter.AudioStore

	coachCfg config.Coach

	// now and welcomeDelay are swappable in tests.
	now          func() time.Time
	welcomeDelay func() time.Duration

	logger *logger.Logger
}

// NewTriggerService constructs the auto-message dispatcher over the given
// repositories and outbound adapters.
func NewTriggerService(repos *store.Repositories, tts adapter.VoiceSynthesizer, audio adapter.AudioStore, coachCfg config.Coach, logger *logger.Logger) TriggerService {
	return &triggerService{
		users:         repos.UserRepository,
		messages:      repos.MessageRepository,
		notifications: repos.NotificationRepository,
		scheduled:     repos.ScheduledMessageRepository,
		deliveries:    repos.DeliveryRepository,
		tts:           tts,
		audio:         audio,
		coachCfg:      coachCfg,
		now:           time.Now,
		welcomeDelay: func() time.Duration {
			return welcomeDelayMin + time.Duration(rand.Intn(welcomeDelaySpan))*time.Second
		},
		logger: logger,
	}
}

// Dispatch implements [TriggerService].
func (t *triggerService) Dispatch(ctx context.Context, req models.TriggerRequest) error {
	log := logger.FromContext(ctx)

	user, err := t.users.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("userID", req.UserID).Str("trigger", req.Trigger).Msg("trigger for unknown user, skipping")
			return nil
		}
		log.Err(err).Int64("userID", req.UserID).Str("trigger", req.Trigger).Msg("user lookup failed, send dropped")
		return nil
	}
	if user.IsFake {
		log.Debug().Int64("userID", user.UserID).Str("trigger", req.Trigger).Msg("fake profile, skipping")
		return nil
	}

	coach, err := t.resolveCoach(ctx, user)
	if err != nil {
		log.Warn().Err(err).Int64("userID", user.UserID).Str("trigger", req.Trigger).Msg("send dropped")
		return nil
	}

	if req.Trigger == models.TriggerFirstLogin {
		return t.scheduleWelcome(ctx, user, coach)
	}

	content, ok := lookupContent(req)
	if !ok {
		log.Debug().Str("trigger", req.Trigger).Str("value", req.TriggerValue).Msg("no content for trigger, skipping")
		return nil
	}

	if err = t.send(ctx, coach, user, req.Trigger, req.TriggerValue, content); err != nil {
		log.Err(err).Int64("userID", user.UserID).Str("trigger", req.Trigger).Msg("send failed")
	}
	return nil
}

// lookupContent maps a trigger request onto the static catalog. A miss
// means "do not send", never an error.
func lookupContent(req models.TriggerRequest) (catalog.Content, bool) {
	switch req.Trigger {
	case models.TriggerModuleComplete:
		index, err := strconv.Atoi(req.TriggerValue)
		if err != nil {
			return catalog.Content{}, false
		}
		return catalog.ModuleComplete(index)

	case models.TriggerMiniDiplomaModule:
		index, err := strconv.Atoi(req.TriggerValue)
		if err != nil {
			return catalog.Content{}, false
		}
		return catalog.MiniDiplomaModuleComplete(index)

	case models.TriggerWHLessonComplete:
		index, err := strconv.Atoi(req.TriggerValue)
		if err != nil {
			return catalog.Content{}, false
		}
		return catalog.WHLessonComplete(index)

	case models.TriggerWHAccessExpiring:
		return catalog.WHAccessExpiring(req.TriggerValue)

	case models.TriggerWHInactivity:
		return catalog.WHInactivity(req.TriggerValue)

	default:
		return catalog.Named(req.Trigger)
	}
}

// resolveCoach picks the persona sending on behalf of "the coach":
// the user's pinned coach, else the first configured persona account that
// exists, else the earliest-created ADMIN/MENTOR.
func (t *triggerService) resolveCoach(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.AssignedCoachID.Valid {
		coach, err := t.users.FindUserByID(ctx, user.AssignedCoachID.Int64)
		if err == nil {
			return coach, nil
		}
		log.Warn().Err(err).Int64("coachID", user.AssignedCoachID.Int64).Msg("assigned coach not loadable, falling back")
	}

	for _, email := range t.coachCfg.PersonaEmails {
		coach, err := t.users.FindUserByEmail(ctx, email)
		if err == nil {
			return coach, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Err(err).Str("email", email).Msg("persona lookup failed")
		}
	}

	coach, err := t.users.FindEarliestByRoles(ctx, models.RoleAdmin, models.RoleMentor)
	if err != nil {
		return models.User{}, ErrNoCoachAvailable
	}
	return coach, nil
}

// send delivers one catalog entry: claim the idempotency ledger, write the
// text message and notification, then the optional voice note. Ledger
// conflicts are a silent no-op; adapter failures keep the text send.
func (t *triggerService) send(ctx context.Context, coach, user models.User, triggerKey, occurrenceKey string, content catalog.Content) error {
	log := logger.FromContext(ctx)

	deliveryID, err := t.deliveries.RecordDelivery(ctx, user.UserID, triggerKey, occurrenceKey)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyDelivered) {
			log.Debug().Int64("userID", user.UserID).Str("trigger", triggerKey).Str("occurrence", occurrenceKey).Msg("already delivered, skipping")
			return nil
		}
		return fmt.Errorf("recording delivery: %w", err)
	}

	text := catalog.Personalize(content.Text, user.FirstName)
	msg, err := t.messages.CreateMessage(ctx, models.Message{
		SenderID:   coach.UserID,
		ReceiverID: user.UserID,
		Content:    text,
		Type:       models.MessageTypeDirect,
	})
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}

	if err = t.deliveries.LinkMessage(ctx, deliveryID, msg.MessageID); err != nil {
		log.Warn().Err(err).Int64("deliveryID", deliveryID).Msg("linking message to delivery failed")
	}

	if err = t.notify(ctx, coach, user); err != nil {
		log.Warn().Err(err).Int64("userID", user.UserID).Msg("notification write failed")
	}

	if content.HasVoice {
		t.sendVoice(ctx, coach, user, content.VoiceScript)
	}

	return nil
}

func (t *triggerService) notify(ctx context.Context, coach, user models.User) error {
	_, err := t.notifications.CreateNotification(ctx, models.Notification{
		UserID:  user.UserID,
		Type:    models.NotificationTypeNewMessage,
		Title:   "New message",
		Message: fmt.Sprintf("You have a new message from %s", coach.FirstName),
		Payload: fmt.Sprintf(`{"sender_id":%d}`, coach.UserID),
	})
	return err
}

// sendVoice runs the synthesis+upload pipeline and writes the voice-note
// message. Every failure is logged and swallowed: the text message has
// already been sent and partial success is accepted.
func (t *triggerService) sendVoice(ctx context.Context, coach, user models.User, script string) {
	log := logger.FromContext(ctx)

	script = catalog.Personalize(script, user.FirstName)

	synthesis, err := t.tts.Synthesize(ctx, script)
	if err != nil {
		log.Warn().Err(err).Int64("userID", user.UserID).Msg("voice synthesis failed, text-only send")
		return
	}

	stored, err := t.audio.UploadAudio(ctx, synthesis.Audio, uuid.NewString()+".mp3", synthesis.DurationSeconds)
	if err != nil {
		log.Warn().Err(err).Int64("userID", user.UserID).Msg("voice upload failed, text-only send")
		return
	}

	if _, err = t.messages.CreateMessage(ctx, models.Message{
		SenderID:       coach.UserID,
		ReceiverID:     user.UserID,
		Content:        models.VoiceMessageContent,
		Type:           models.MessageTypeDirect,
		AttachmentURL:  stored.URL,
		AttachmentType: models.AttachmentTypeVoice,
		AttachmentName: "Voice message",
		VoiceDuration:  stored.DurationSeconds,
	}); err != nil {
		log.Warn().Err(err).Int64("userID", user.UserID).Msg("voice message write failed")
	}
}

// scheduleWelcome defers the first-login welcome 2-3 minutes into the
// future as a LITERAL scheduled row. Unlike all other triggers its
// persistence errors are returned, so the caller's logs capture a lost
// welcome.
func (t *triggerService) scheduleWelcome(ctx context.Context, user, coach models.User) error {
	log := logger.FromContext(ctx)

	welcome := catalog.Welcome()
	text := catalog.Personalize(welcome.Text, user.FirstName)

	exists, err := t.messages.HasMessageWithPrefix(ctx, user.UserID, contentPrefix(text))
	if err != nil {
		return fmt.Errorf("welcome message guard: %w", err)
	}
	if exists {
		log.Debug().Int64("userID", user.UserID).Msg("welcome already sent, skipping")
		return nil
	}

	active, err := t.scheduled.HasActiveForReceiver(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("scheduled welcome guard: %w", err)
	}
	if active {
		log.Debug().Int64("userID", user.UserID).Msg("welcome already scheduled, skipping")
		return nil
	}

	// The platform's immediate admin welcome is disabled; the account is
	// still resolved so re-enabling the send stays a local change.
	if _, err = t.users.FindEarliestByRoles(ctx, models.RoleAdmin); err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Err(err).Msg("admin account lookup failed")
	}

	sender := coach
	var persona models.User
	if len(t.coachCfg.PersonaEmails) > 0 {
		p, personaErr := t.users.FindUserByEmail(ctx, t.coachCfg.PersonaEmails[0])
		if personaErr == nil {
			sender = p
			persona = p
		}
	}

	if _, err = t.scheduled.CreateScheduledMessage(ctx, models.ScheduledMessage{
		SenderID:     sender.UserID,
		ReceiverID:   user.UserID,
		Kind:         models.ScheduledKindLiteral,
		TextContent:  text,
		VoiceScript:  catalog.Personalize(welcome.VoiceScript, user.FirstName),
		ScheduledFor: t.now().Add(t.welcomeDelay()),
		Status:       models.ScheduledStatusPending,
	}); err != nil {
		return fmt.Errorf("scheduling welcome: %w", err)
	}

	if persona.UserID != 0 && (!user.AssignedCoachID.Valid || user.AssignedCoachID.Int64 != persona.UserID) {
		if err = t.users.SetAssignedCoach(ctx, user.UserID, persona.UserID); err != nil {
			log.Warn().Err(err).Int64("userID", user.UserID).Int64("coachID", persona.UserID).Msg("pinning coach persona failed")
		}
	}

	return nil
}

// contentPrefix returns the leading runes of a rendered template, used by
// the legacy content-based welcome guard.
func contentPrefix(text string) string {
	runes := []rune(text)
	if len(runes) <= welcomePrefixLen {
		return text
	}
	return string(runes[:welcomePrefixLen])
}
