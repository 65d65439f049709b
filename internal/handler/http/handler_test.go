package http

import (
	"net/http"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/service"
)

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		version:  "1.2.3-test",
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so handlers
// invoked outside the full middleware chain do not log to stdout.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
