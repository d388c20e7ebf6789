package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"towerboard/internal/api"
	"towerboard/internal/eventlog"
	"towerboard/internal/logging"
	"towerboard/internal/metrics"
	"towerboard/internal/middleware"
	"towerboard/internal/strips"
	"towerboard/internal/tracking"
	"towerboard/internal/ws"
)

// RegisterRoutes builds the HTTP surface: the ATC API, the health check
// and the websocket endpoint. The Prometheus scrape endpoint is mounted
// separately in main.
func RegisterRoutes(
	metricsReg *metrics.Registry,
	board *strips.Board,
	tracker *tracking.Service,
	events *eventlog.Store,
	eventDB *gorm.DB,
	hub *ws.Hub,
	upSince time.Time,
) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/health", api.HealthCheckHandler(board, eventDB, upSince))
	r.Get("/ws", hub.ServeWS)

	RegisterAPIRoutes(r, metricsReg, board, tracker, events)

	return r
}
