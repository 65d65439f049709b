// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the trigger and scheduled-message API. Authentication, logging and
// tracing concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/utils"
)

// auth is an HTTP middleware that enforces service-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.TokenService.ParseToken], and on success
// stores the calling service's name in the request context under
// [utils.CallerCtxKey] before delegating to the next handler.
//
// Requests with a missing or malformed header, or an expired or otherwise
// invalid token, are rejected with HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the caller's name in the context so downstream handlers can
		// log it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.CallerCtxKey, token.Caller)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
