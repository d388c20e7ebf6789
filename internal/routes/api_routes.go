package routes

import (
	"github.com/go-chi/chi/v5"

	"towerboard/internal/api"
	"towerboard/internal/eventlog"
	"towerboard/internal/metrics"
	"towerboard/internal/middleware"
	"towerboard/internal/strips"
	"towerboard/internal/tracking"
)

// RegisterAPIRoutes registers the /api/atc surface. This keeps API route
// registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.Registry, board *strips.Board,
	tracker *tracking.Service, events *eventlog.Store) {

	r.Route("/api/atc", func(atc chi.Router) {
		atc.Use(middleware.MetricsMiddleware(metricsReg))

		atc.Get("/airports/list", api.AirportsListHandler())
		atc.Get("/aircraft/airport/{code}", api.AircraftByAirportHandler(tracker))

		atc.Route("/strips", func(s chi.Router) {
			s.Get("/", api.BoardViewHandler(board))
			s.Post("/", api.CreateStripHandler(board))
			s.Post("/reorder", api.ReorderStripHandler(board))
			s.Get("/events", api.EventsHandler(events))

			s.Route("/{id}", func(one chi.Router) {
				one.Get("/", api.GetStripHandler(board))
				one.Delete("/", api.RemoveStripHandler(board))
				one.Post("/drop", api.DropStripHandler(board))
				one.Post("/transfer", api.TransferStripHandler(board))
				one.Put("/notes", api.EditNotesHandler(board))
				one.Post("/notes/commit", api.CommitNotesHandler(board))
				one.Delete("/notes", api.CancelNotesHandler(board))
			})
		})

		atc.Post("/assistant/command", api.AssistantCommandHandler(board))
	})
}
