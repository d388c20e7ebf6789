package metrics

import "towerboard/internal/strips"

// BoardSink counts applied strip-board mutations. It satisfies
// strips.EventSink and does nothing slower than a counter increment, so it
// is safe to run inside the board's mutation step.
type BoardSink struct {
	reg *Registry
}

// NewBoardSink returns an event sink recording into reg.
func NewBoardSink(reg *Registry) *BoardSink {
	return &BoardSink{reg: reg}
}

func (s *BoardSink) Record(ev strips.Event) {
	s.reg.StripEventsTotal.WithLabelValues(string(ev.Type)).Inc()
	switch ev.Type {
	case strips.EventCreated:
		s.reg.StripsOnBoard.Inc()
	case strips.EventExpired, strips.EventRemoved:
		s.reg.StripsOnBoard.Dec()
	}
}
