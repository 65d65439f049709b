// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/coach-courier/internal/mock"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/utils"
	"github.com/MKhiriev/coach-courier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	nextCalled := false
	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	nextCalled := false
	rr := executeAuth(h, "Bearer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mock.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().
		ParseToken(gomock.Any(), "bad-token").
		Return(models.ServiceToken{}, errors.New("token is malformed"))

	h := newTestHandler(&service.Services{TokenService: tokenSvc})

	rr := executeAuth(h, "Bearer bad-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ValidToken_StoresCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mock.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().
		ParseToken(gomock.Any(), "good-token").
		Return(models.ServiceToken{Caller: "login-handler"}, nil)

	h := newTestHandler(&service.Services{TokenService: tokenSvc})

	nextCalled := false
	rr := executeAuth(h, "Bearer good-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		caller, ok := utils.GetCallerFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "login-handler", caller)
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
}
