package service

import (
	"github.com/MKhiriev/coach-courier/internal/adapter"
	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/store"
)

// Services aggregates all business-logic components of the application.
type Services struct {
	TriggerService          TriggerService
	ScheduledMessageService ScheduledMessageService
	LoginService            LoginService
	TokenService            TokenService
}

// NewServices wires the services over the repositories and outbound
// adapters.
func NewServices(repos *store.Repositories, tts adapter.VoiceSynthesizer, audio adapter.AudioStore, geo adapter.GeoLocator, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	triggerService := NewTriggerService(repos, tts, audio, cfg.Coach, logger)

	return &Services{
		TriggerService:          triggerService,
		ScheduledMessageService: NewScheduledMessageService(repos, triggerService, cfg.Coach, cfg.Workers, logger),
		LoginService:            NewLoginService(repos, geo, triggerService, logger),
		TokenService:            NewTokenService(cfg.App, logger),
	}
}
