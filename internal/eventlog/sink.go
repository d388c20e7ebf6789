package eventlog

import (
	"context"
	"sync"

	"towerboard/internal/logging"
	"towerboard/internal/strips"
)

// Sink adapts the store to the board's event hook. Record is called while
// the board holds its mutation lock, so writes go through a buffered
// channel and a single writer goroutine instead of touching the database
// inline.
type Sink struct {
	store *Store
	ch    chan strips.Event
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewSink starts the writer goroutine. Call Close on shutdown to drain it.
func NewSink(store *Store) *Sink {
	s := &Sink{
		store: store,
		ch:    make(chan strips.Event, 256),
		done:  make(chan struct{}),
	}
	go s.writer()
	return s
}

var _ strips.EventSink = (*Sink)(nil)

// Record enqueues the event. If the buffer is full the event is dropped
// rather than stalling board mutations. The board keeps mutating during
// shutdown (a countdown can still expire), so events arriving after Close
// are dropped instead of hitting the closed channel.
func (s *Sink) Record(ev strips.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
		logging.Warn("event log buffer full, dropping event",
			"event_type", string(ev.Type), "strip_id", ev.StripID)
	}
}

// Close stops accepting events and waits for the queue to drain. Safe to
// call more than once.
func (s *Sink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()
	<-s.done
}

func (s *Sink) writer() {
	defer close(s.done)
	for ev := range s.ch {
		if err := s.store.Insert(context.Background(), entryFrom(ev)); err != nil {
			logging.Error("event log write failed",
				"event_type", string(ev.Type), "strip_id", ev.StripID, "error", err)
		}
	}
}
