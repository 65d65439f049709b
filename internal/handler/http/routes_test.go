package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(services *service.Services) http.Handler {
	h := NewHandler(services, "1.2.3-test", logger.Nop())
	return h.Init()
}

func TestRoutes_VersionWithoutToken(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3-test", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_TriggersRequireToken(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/triggers/", strings.NewReader(`{"user_id":7,"trigger":"first_login"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_TriggersWithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mock.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().
		ParseToken(gomock.Any(), "service-token").
		Return(models.ServiceToken{Caller: "progress-tracker"}, nil)

	triggerSvc := mock.NewMockTriggerService(ctrl)
	triggerSvc.EXPECT().
		Dispatch(gomock.Any(), models.TriggerRequest{UserID: 7, Trigger: "first_login"}).
		Return(nil)

	router := newTestRouter(&service.Services{
		TokenService:   tokenSvc,
		TriggerService: triggerSvc,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/triggers/", strings.NewReader(`{"user_id":7,"trigger":"first_login"}`))
	req.Header.Set("Authorization", "Bearer service-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestRoutes_WrongMethodHidesRoute(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodDelete, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
