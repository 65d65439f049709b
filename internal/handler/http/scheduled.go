package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/MKhiriev/coach-courier/internal/store"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listScheduled(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status := r.URL.Query().Get("status")

	var limit int
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsedLimit, err := strconv.Atoi(rawLimit)
		if err != nil {
			log.Err(err).Str("limit", rawLimit).Msg("invalid limit param")
			http.Error(w, "invalid limit param", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	scheduledMessages, err := h.services.ScheduledMessageService.List(ctx, status, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("status", status).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during scheduled messages listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scheduledMessages); err != nil {
		log.Err(err).Msg("error encoding scheduled messages")
	}
}

func (h *Handler) requeueScheduled(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid scheduled message id")
		http.Error(w, "invalid scheduled message id", http.StatusBadRequest)
		return
	}

	if err := h.services.ScheduledMessageService.Requeue(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("id", id).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrScheduledMessageNotFound):
			log.Err(err).Int64("id", id).Msg("scheduled message was not found")
			http.Error(w, "scheduled message was not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during requeue")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
