package ws

import (
	"context"
	"time"

	"towerboard/internal/logging"
	"towerboard/internal/strips"
	"towerboard/internal/tracking"
)

// Monitor pushes live updates to the hub: board snapshots whenever the
// board mutates, and aircraft positions for the watched airport on a timer.
type Monitor struct {
	hub      *Hub
	tracker  *tracking.Service
	airport  string
	radiusNM int
	interval time.Duration
}

func NewMonitor(hub *Hub, tracker *tracking.Service, airport string, radiusNM int, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Monitor{
		hub:      hub,
		tracker:  tracker,
		airport:  airport,
		radiusNM: radiusNM,
		interval: interval,
	}
}

// AttachBoard subscribes the hub to board mutations. Subscribers run under
// the board's mutation lock, so the hub's non-blocking Broadcast matters.
func (m *Monitor) AttachBoard(board *strips.Board) {
	board.Subscribe(func(views map[strips.Station][]strips.Strip) {
		m.hub.Broadcast("board_update", views)
	})
}

// Run polls aircraft positions until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			area, err := m.tracker.AircraftNearAirport(ctx, m.airport, m.radiusNM)
			if err != nil {
				logging.Warn("aircraft poll failed", "airport", m.airport, "error", err)
				continue
			}
			m.hub.Broadcast("aircraft_update", area)
		}
	}
}
