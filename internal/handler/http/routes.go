package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes for authenticated internal services
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/triggers/", h.dispatchTrigger)
		r.Post("/api/login-events/", h.reportLogin)
		r.Get("/api/scheduled/", h.listScheduled)
		r.Post("/api/scheduled/{id}/requeue", h.requeueScheduled)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
