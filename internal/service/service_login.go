package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/coach-courier/internal/adapter"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/MKhiriev/coach-courier/models"
)

// loginService is the concrete implementation of [LoginService].
type loginService struct {
	users       store.UserRepository
	loginEvents store.LoginEventRepository

	geo adapter.GeoLocator

	dispatcher TriggerService

	now func() time.Time

	logger *logger.Logger
}

// NewLoginService constructs the login-event handler.
func NewLoginService(repos *store.Repositories, geo adapter.GeoLocator, dispatcher TriggerService, logger *logger.Logger) LoginService {
	return &loginService{
		users:       repos.UserRepository,
		loginEvents: repos.LoginEventRepository,
		geo:         geo,
		dispatcher:  dispatcher,
		now:         time.Now,
		logger:      logger,
	}
}

// HandleLogin implements [LoginService]. Login bookkeeping runs inline;
// the geolocation lookup and audit write run in a detached goroutine so
// they never delay the login path, and their failures are logged only.
// A first login dispatches the welcome trigger; a welcome failure is
// logged but never fails the login.
func (l *loginService) HandleLogin(ctx context.Context, userID int64, ip, userAgent string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return ErrInvalidDataProvided
	}

	if _, err := l.users.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("login user lookup: %w", err)
	}

	first, err := l.users.RecordLogin(ctx, userID, l.now())
	if err != nil {
		return fmt.Errorf("recording login: %w", err)
	}

	go l.recordEvent(context.WithoutCancel(ctx), userID, ip, userAgent)

	if first {
		if err = l.dispatcher.Dispatch(ctx, models.TriggerRequest{
			UserID:  userID,
			Trigger: models.TriggerFirstLogin,
		}); err != nil {
			log.Err(err).Int64("userID", userID).Msg("first-login welcome dispatch failed")
		}
	}

	return nil
}

// recordEvent resolves the login address and persists the audit row.
func (l *loginService) recordEvent(ctx context.Context, userID int64, ip, userAgent string) {
	log := logger.FromContext(ctx)

	location := l.geo.Resolve(ctx, ip)

	if _, err := l.loginEvents.CreateLoginEvent(ctx, models.LoginEvent{
		UserID:      userID,
		IP:          ip,
		Country:     location.Country,
		CountryCode: location.CountryCode,
		City:        location.City,
		Region:      location.Region,
		ISP:         location.ISP,
		UserAgent:   userAgent,
	}); err != nil {
		log.Err(err).Int64("userID", userID).Msg("login event write failed")
	}
}
