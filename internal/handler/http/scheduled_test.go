package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeListScheduled(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/scheduled/"+query, nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.listScheduled(rr, req)
	return rr
}

func executeRequeueScheduled(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/scheduled/"+id+"/requeue", nil)
	req = injectNopLogger(req)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	h.requeueScheduled(rr, req)
	return rr
}

func TestListScheduled_ReturnsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []models.ScheduledMessage{
		{
			ScheduledMessageID: 1,
			SenderID:           2,
			ReceiverID:         7,
			Kind:               models.ScheduledKindLiteral,
			TextContent:        "Hi Anna!",
			ScheduledFor:       time.Date(2026, 3, 14, 10, 2, 0, 0, time.UTC),
			Status:             models.ScheduledStatusPending,
		},
	}

	scheduledSvc := mock.NewMockScheduledMessageService(ctrl)
	scheduledSvc.EXPECT().
		List(gomock.Any(), models.ScheduledStatusPending, 10).
		Return(rows, nil)

	h := newTestHandler(&service.Services{ScheduledMessageService: scheduledSvc})

	rr := executeListScheduled(h, "?status=PENDING&limit=10")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.ScheduledMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ScheduledMessageID)
	assert.Equal(t, "Hi Anna!", got[0].TextContent)
}

func TestListScheduled_DefaultsWithoutParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduledSvc := mock.NewMockScheduledMessageService(ctrl)
	scheduledSvc.EXPECT().
		List(gomock.Any(), "", 0).
		Return([]models.ScheduledMessage{}, nil)

	h := newTestHandler(&service.Services{ScheduledMessageService: scheduledSvc})

	rr := executeListScheduled(h, "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListScheduled_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduledSvc := mock.NewMockScheduledMessageService(ctrl)
	scheduledSvc.EXPECT().
		List(gomock.Any(), "NONSENSE", 0).
		Return(nil, service.ErrInvalidDataProvided)

	h := newTestHandler(&service.Services{ScheduledMessageService: scheduledSvc})

	rr := executeListScheduled(h, "?status=NONSENSE")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListScheduled_NonNumericLimit(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := executeListScheduled(h, "?limit=ten")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequeueScheduled_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduledSvc := mock.NewMockScheduledMessageService(ctrl)
	scheduledSvc.EXPECT().
		Requeue(gomock.Any(), int64(5)).
		Return(nil)

	h := newTestHandler(&service.Services{ScheduledMessageService: scheduledSvc})

	rr := executeRequeueScheduled(h, "5")

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequeueScheduled_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduledSvc := mock.NewMockScheduledMessageService(ctrl)
	scheduledSvc.EXPECT().
		Requeue(gomock.Any(), int64(99)).
		Return(store.ErrScheduledMessageNotFound)

	h := newTestHandler(&service.Services{ScheduledMessageService: scheduledSvc})

	rr := executeRequeueScheduled(h, "99")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRequeueScheduled_InvalidID(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := executeRequeueScheduled(h, "abc")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
