package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"towerboard/internal/common"
	"towerboard/internal/models/dtos"
	"towerboard/internal/strips"
)

// BoardViewHandler handles GET /api/atc/strips: the per-station ordered
// view projection.
func BoardViewHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Board fetched", board.Views())
	}
}

// CreateStripHandler handles POST /api/atc/strips
func CreateStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var fields strips.Strip
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		strip, err := board.Create(fields)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create strip", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip created", strip, http.StatusCreated)
	}
}

// GetStripHandler handles GET /api/atc/strips/{id}
func GetStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		strip, err := board.Get(chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Strip not found", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip fetched", strip)
	}
}

// RemoveStripHandler handles DELETE /api/atc/strips/{id}
func RemoveStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := board.Remove(chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to remove strip", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip removed", nil)
	}
}

// DropStripHandler handles POST /api/atc/strips/{id}/drop: the gesture-end
// target resolution used by the dashboard's drag and drop.
func DropStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.DropRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		target := strips.DropTarget{
			Station: strips.Station(req.Station),
			StripID: req.StripID,
		}
		if err := board.Drop(chi.URLParam(r, "id"), target); err != nil {
			common.RespondError(w, initTime, err, "Failed to place strip", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip placed", board.Views())
	}
}

// ReorderStripHandler handles POST /api/atc/strips/reorder
func ReorderStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := board.Reorder(strips.Station(req.Station), req.From, req.To); err != nil {
			common.RespondError(w, initTime, err, "Failed to reorder", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip reordered", board.Views())
	}
}

// TransferStripHandler handles POST /api/atc/strips/{id}/transfer
func TransferStripHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "id")
		var err error
		if req.Index != nil {
			err = board.Transfer(id, strips.Station(req.Station), *req.Index)
		} else {
			err = board.Transfer(id, strips.Station(req.Station))
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to transfer", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Strip transferred", board.Views())
	}
}

// EditNotesHandler handles PUT /api/atc/strips/{id}/notes: buffers the text
// and commits it after the quiet window.
func EditNotesHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.NotesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := board.EditNotes(chi.URLParam(r, "id"), req.Text); err != nil {
			common.RespondError(w, initTime, err, "Failed to edit notes", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Notes buffered", nil)
	}
}

// CommitNotesHandler handles POST /api/atc/strips/{id}/notes/commit
func CommitNotesHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := board.CommitNotes(chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to commit notes", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Notes committed", nil)
	}
}

// CancelNotesHandler handles DELETE /api/atc/strips/{id}/notes
func CancelNotesHandler(board *strips.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := board.CancelNotes(chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to cancel notes", statusFor(err))
			return
		}
		common.RespondSuccess(w, initTime, "Notes discarded", nil)
	}
}
