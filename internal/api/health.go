package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"towerboard/internal/strips"
)

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Strips   int                      `json:"strips_on_board"`
	Services map[string]ServiceStatus `json:"services"`
}

// HealthCheckHandler handles GET /health
func HealthCheckHandler(board *strips.Board, eventDB *gorm.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Event log connected"
		if sqlDB, err := eventDB.DB(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["eventlog"] = ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := HealthCheckResponse{
			Status:   overallStatus,
			Uptime:   uptime,
			Strips:   board.Len(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
