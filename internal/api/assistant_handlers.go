package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"towerboard/internal/common"
	"towerboard/internal/eventlog"
	"towerboard/internal/models/dtos"
	"towerboard/internal/strips"
)

// AssistantCommandHandler handles POST /api/atc/assistant/command: field
// updates and moves addressed by callsign, applied immediately without the
// scratchpad debounce. Commands for callsigns with no strip succeed and
// change nothing, so the assistant never stalls on stale state.
func AssistantCommandHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AssistantCommandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Callsign == "" {
			common.RespondError(w, initTime, nil, "callsign is required", http.StatusBadRequest)
			return
		}

		var err error
		switch req.Command {
		case "update_field":
			err = board.UpdateByCallsign(req.Callsign, req.Field, req.Value)
		case "update_notes":
			err = board.UpdateNotes(req.Callsign, req.Value)
		case "update_squawk":
			err = board.UpdateSquawk(req.Callsign, req.Value)
		case "move":
			err = board.MoveStrip(req.Callsign, strips.Station(req.Station))
		default:
			common.RespondError(w, initTime, nil, "unknown command "+req.Command, http.StatusBadRequest)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Command failed", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Command applied", board.Views())
	}
}

// EventsHandler handles GET /api/atc/strips/events: the audit trail,
// newest first.
func EventsHandler(store *eventlog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				common.RespondError(w, initTime, nil, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		entries, err := store.Recent(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch events")
			return
		}
		common.RespondSuccess(w, initTime, "Events fetched", entries)
	}
}
