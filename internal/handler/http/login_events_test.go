package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeReportLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login-events/", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.reportLogin(rr, req)
	return rr
}

func TestReportLogin_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().
		HandleLogin(gomock.Any(), int64(7), "203.0.113.10", "Mozilla/5.0").
		Return(nil)

	h := newTestHandler(&service.Services{LoginService: loginSvc})

	rr := executeReportLogin(h, `{"user_id":7,"ip":"203.0.113.10","user_agent":"Mozilla/5.0"}`)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestReportLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().
		HandleLogin(gomock.Any(), int64(404), gomock.Any(), gomock.Any()).
		Return(store.ErrNoUserWasFound)

	h := newTestHandler(&service.Services{LoginService: loginSvc})

	rr := executeReportLogin(h, `{"user_id":404,"ip":"203.0.113.10"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReportLogin_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().
		HandleLogin(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).
		Return(service.ErrInvalidDataProvided)

	h := newTestHandler(&service.Services{LoginService: loginSvc})

	rr := executeReportLogin(h, `{"ip":"203.0.113.10"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReportLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := executeReportLogin(h, `not json at all`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
