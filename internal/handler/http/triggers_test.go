package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeDispatchTrigger(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/triggers/", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.dispatchTrigger(rr, req)
	return rr
}

func TestDispatchTrigger_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	triggerSvc := mock.NewMockTriggerService(ctrl)
	triggerSvc.EXPECT().
		Dispatch(gomock.Any(), models.TriggerRequest{UserID: 7, Trigger: "module_complete", TriggerValue: "5"}).
		Return(nil)

	h := newTestHandler(&service.Services{TriggerService: triggerSvc})

	rr := executeDispatchTrigger(h, `{"user_id":7,"trigger":"module_complete","trigger_value":"5"}`)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestDispatchTrigger_DispatchErrorStillAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	triggerSvc := mock.NewMockTriggerService(ctrl)
	triggerSvc.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(errors.New("scheduling welcome: db is down"))

	h := newTestHandler(&service.Services{TriggerService: triggerSvc})

	rr := executeDispatchTrigger(h, `{"user_id":7,"trigger":"first_login"}`)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestDispatchTrigger_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := executeDispatchTrigger(h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDispatchTrigger_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no user_id", body: `{"trigger":"module_complete"}`},
		{name: "no trigger", body: `{"user_id":7}`},
		{name: "negative user_id", body: `{"user_id":-1,"trigger":"module_complete"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})

			rr := executeDispatchTrigger(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
