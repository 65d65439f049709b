package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type scheduledMocks struct {
	scheduled     *mock.MockScheduledMessageRepository
	messages      *mock.MockMessageRepository
	notifications *mock.MockNotificationRepository
	dispatcher    *mock.MockTriggerService
}

func newTestScheduledSvc(t *testing.T, ctrl *gomock.Controller, coachCfg config.Coach) (*scheduledMessageService, scheduledMocks) {
	t.Helper()

	m := scheduledMocks{
		scheduled:     mock.NewMockScheduledMessageRepository(ctrl),
		messages:      mock.NewMockMessageRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
		dispatcher:    mock.NewMockTriggerService(ctrl),
	}

	repos := &store.Repositories{
		ScheduledMessageRepository: m.scheduled,
		MessageRepository:          m.messages,
		NotificationRepository:     m.notifications,
	}

	svc := NewScheduledMessageService(repos, m.dispatcher, coachCfg, config.Workers{BatchSize: 10}, logger.Nop()).(*scheduledMessageService)
	return svc, m
}

func TestProcessDue_TriggerReplayRowInvokesDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScheduledSvc(t, ctrl, config.Coach{})

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	row := models.ScheduledMessage{
		ScheduledMessageID: 11,
		ReceiverID:         7,
		Kind:               models.ScheduledKindLiteral,
		TextContent:        "trigger:module_complete:5",
		ScheduledFor:       now.Add(-time.Minute),
		Status:             models.ScheduledStatusPending,
	}

	m.scheduled.EXPECT().ListDue(gomock.Any(), now, 10).Return([]models.ScheduledMessage{row}, nil)
	m.scheduled.EXPECT().ClaimProcessing(gomock.Any(), int64(11)).Return(nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), models.TriggerRequest{
		UserID:       7,
		Trigger:      "module_complete",
		TriggerValue: "5",
	}).Return(nil)
	m.scheduled.EXPECT().MarkSent(gomock.Any(), int64(11), now).Return(nil)

	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestProcessDue_ExplicitTriggerKindRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScheduledSvc(t, ctrl, config.Coach{})

	row := models.ScheduledMessage{
		ScheduledMessageID: 12,
		ReceiverID:         8,
		Kind:               models.ScheduledKindTrigger,
		TriggerName:        models.TriggerWHInactivity,
		TriggerValue:       "2",
		Status:             models.ScheduledStatusPending,
	}

	m.scheduled.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]models.ScheduledMessage{row}, nil)
	m.scheduled.EXPECT().ClaimProcessing(gomock.Any(), int64(12)).Return(nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), models.TriggerRequest{
		UserID:       8,
		Trigger:      models.TriggerWHInactivity,
		TriggerValue: "2",
	}).Return(nil)
	m.scheduled.EXPECT().MarkSent(gomock.Any(), int64(12), gomock.Any()).Return(nil)

	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestProcessDue_LiteralWelcomeUsesStaticAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coachCfg := config.Coach{
		WelcomeAudioURL:      "https://cdn.example.com/welcome.mp3",
		WelcomeAudioDuration: 23,
	}
	svc, m := newTestScheduledSvc(t, ctrl, coachCfg)

	row := models.ScheduledMessage{
		ScheduledMessageID: 13,
		SenderID:           2,
		ReceiverID:         7,
		Kind:               models.ScheduledKindLiteral,
		TextContent:        "Hi Anna, welcome!",
		Status:             models.ScheduledStatusPending,
	}

	m.scheduled.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]models.ScheduledMessage{row}, nil)
	m.scheduled.EXPECT().ClaimProcessing(gomock.Any(), int64(13)).Return(nil)

	var created []models.Message
	m.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.Message) (models.Message, error) {
			created = append(created, msg)
			return msg, nil
		}).Times(2)
	m.notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(models.Notification{}, nil)
	m.scheduled.EXPECT().MarkSent(gomock.Any(), int64(13), gomock.Any()).Return(nil)

	require.NoError(t, svc.ProcessDue(context.Background()))

	require.Len(t, created, 2)
	assert.Equal(t, "Hi Anna, welcome!", created[0].Content)
	assert.Equal(t, models.VoiceMessageContent, created[1].Content)
	assert.Equal(t, "https://cdn.example.com/welcome.mp3", created[1].AttachmentURL)
	assert.Equal(t, 23, created[1].VoiceDuration)
}

func TestProcessDue_FailureMarksRowFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScheduledSvc(t, ctrl, config.Coach{})

	row := models.ScheduledMessage{
		ScheduledMessageID: 14,
		SenderID:           2,
		ReceiverID:         7,
		Kind:               models.ScheduledKindLiteral,
		TextContent:        "Hi Anna, welcome!",
	}

	m.scheduled.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]models.ScheduledMessage{row}, nil)
	m.scheduled.EXPECT().ClaimProcessing(gomock.Any(), int64(14)).Return(nil)
	m.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		Return(models.Message{}, errors.New("db write failed"))
	m.scheduled.EXPECT().MarkFailed(gomock.Any(), int64(14), gomock.Any()).Return(nil)

	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestProcessDue_ClaimedElsewhereIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScheduledSvc(t, ctrl, config.Coach{})

	row := models.ScheduledMessage{ScheduledMessageID: 15, Kind: models.ScheduledKindLiteral, TextContent: "Hi!"}

	m.scheduled.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]models.ScheduledMessage{row}, nil)
	m.scheduled.EXPECT().ClaimProcessing(gomock.Any(), int64(15)).Return(store.ErrScheduledMessageNotClaimed)

	// no message writes, no status finalization
	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestList_ValidatesStatusAndClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestScheduledSvc(t, ctrl, config.Coach{})

	_, err := svc.List(context.Background(), "NONSENSE", 10)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	m.scheduled.EXPECT().List(gomock.Any(), models.ScheduledStatusFailed, defaultListLimit).Return(nil, nil)
	_, err = svc.List(context.Background(), models.ScheduledStatusFailed, 0)
	require.NoError(t, err)

	m.scheduled.EXPECT().List(gomock.Any(), "", maxListLimit).Return(nil, nil)
	_, err = svc.List(context.Background(), "", 10000)
	require.NoError(t, err)
}

func TestRequeue_RejectsBadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestScheduledSvc(t, ctrl, config.Coach{})

	assert.ErrorIs(t, svc.Requeue(context.Background(), 0), ErrInvalidDataProvided)
}
