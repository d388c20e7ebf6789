package strips

import "time"

// EventType enumerates the strip lifecycle events emitted by the board.
type EventType string

const (
	EventCreated        EventType = "created"
	EventReordered      EventType = "reordered"
	EventTransferred    EventType = "transferred"
	EventNotesCommitted EventType = "notes_committed"
	EventFieldUpdated   EventType = "field_updated"
	EventExpired        EventType = "expired"
	EventRemoved        EventType = "removed"
)

// Event describes one applied board mutation. Events are emitted only after
// the mutation has fully succeeded, so sinks never observe rejected or
// partial operations.
type Event struct {
	Type     EventType `json:"type"`
	StripID  string    `json:"strip_id"`
	Callsign string    `json:"callsign"`
	Station  Station   `json:"station"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}

// EventSink receives applied board events. Record is called while the board
// holds its mutation lock, so implementations must return quickly and must
// not call back into the board; hand off to a channel for anything slow.
type EventSink interface {
	Record(ev Event)
}
