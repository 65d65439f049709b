package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/models"
)

func (h *Handler) dispatchTrigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.UserID <= 0 || req.Trigger == "" {
		log.Warn().Int64("user_id", req.UserID).Str("trigger", req.Trigger).Msg("incomplete trigger request")
		http.Error(w, "user_id and trigger are required", http.StatusBadRequest)
		return
	}

	log.Debug().Int64("user_id", req.UserID).Str("trigger", req.Trigger).Str("trigger_value", req.TriggerValue).Send()

	// The business action behind the trigger has already happened; the
	// caller is told "accepted" even when delivery internally fails.
	if err := h.services.TriggerService.Dispatch(ctx, req); err != nil {
		log.Err(err).Msg("error occurred during trigger dispatch")
	}

	w.WriteHeader(http.StatusAccepted)
}
