package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"towerboard/internal/common"
	"towerboard/internal/tracking"
)

// AirportsListHandler handles GET /api/atc/airports/list
func AirportsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Airports fetched", tracking.ListAirports())
	}
}

// AircraftByAirportHandler handles GET /api/atc/aircraft/airport/{code}
func AircraftByAirportHandler(tracker *tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		code := chi.URLParam(r, "code")

		radius := 0
		if raw := r.URL.Query().Get("radius"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				common.RespondError(w, initTime, nil, "radius must be a positive integer", http.StatusBadRequest)
				return
			}
			radius = parsed
		}

		area, err := tracker.AircraftNearAirport(r.Context(), code, radius)
		if err != nil {
			if errors.Is(err, tracking.ErrUnknownAirport) {
				common.RespondError(w, initTime, err, "Unknown airport", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch aircraft")
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft fetched", area)
	}
}
