package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/store"
)

type loginEventRequest struct {
	UserID    int64  `json:"user_id"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
}

func (h *Handler) reportLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.LoginService.HandleLogin(ctx, req.UserID, req.IP, req.UserAgent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", req.UserID).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login handling")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusAccepted)
}
