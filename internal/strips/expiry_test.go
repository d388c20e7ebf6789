package strips

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// sinkRecorder collects board events for assertions.
type sinkRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *sinkRecorder) Record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *sinkRecorder) count(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestBoard(t *testing.T, cfg Config) (*Board, *fakeClock, *sinkRecorder) {
	t.Helper()
	clock := newFakeClock()
	sink := &sinkRecorder{}
	return NewBoard(cfg, clock, sink), clock, sink
}

func TestHandoffCountdownRemovesStrip(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())

	if err := b.Seed([]Strip{{ID: "1", Callsign: "AAL100", AircraftType: "B738", Station: StationClearance}}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := b.Transfer("1", StationTracon); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	remaining, counting := b.Remaining("1")
	if !counting || remaining != 10 {
		t.Fatalf("expected countdown at 10, got %d (counting=%v)", remaining, counting)
	}

	clock.Advance(9 * time.Second)
	if _, err := b.Get("1"); err != nil {
		t.Fatalf("strip must survive until the countdown hits zero: %v", err)
	}
	if remaining, _ := b.Remaining("1"); remaining != 1 {
		t.Fatalf("expected 1 second left, got %d", remaining)
	}

	clock.Advance(time.Second)
	if _, err := b.Get("1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
	if sink.count(EventExpired) != 1 {
		t.Fatalf("expected exactly one expiry event, got %d", sink.count(EventExpired))
	}
	if len(b.Views()[StationTracon]) != 0 {
		t.Fatal("expired strip still projected")
	}
}

func TestCountdownTicksOncePerSecond(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())
	strip, err := b.Create(Strip{Callsign: "SWA11", AircraftType: "B737", Station: StationTracon})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for want := 9; want >= 1; want-- {
		clock.Advance(time.Second)
		got, counting := b.Remaining(strip.ID)
		if !counting || got != want {
			t.Fatalf("after tick expected %d remaining, got %d (counting=%v)", want, got, counting)
		}
	}
}

func TestTransferOutCancelsCountdown(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})

	clock.Advance(4 * time.Second)
	if err := b.Transfer(strip.ID, StationTower); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if _, counting := b.Remaining(strip.ID); counting {
		t.Fatal("countdown must be cancelled on leaving the terminal station")
	}

	clock.Advance(time.Minute)
	if _, err := b.Get(strip.ID); err != nil {
		t.Fatalf("strip must survive after cancellation: %v", err)
	}
	if sink.count(EventExpired) != 0 {
		t.Fatal("no expiry event expected")
	}
}

func TestTransferOutKeepsCountdownWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CancelOnExit = false
	b, clock, _ := newTestBoard(t, cfg)
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})

	clock.Advance(4 * time.Second)
	if err := b.Transfer(strip.ID, StationTower); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if remaining, counting := b.Remaining(strip.ID); !counting || remaining != 6 {
		t.Fatalf("countdown should keep running, got %d (counting=%v)", remaining, counting)
	}

	clock.Advance(6 * time.Second)
	if _, err := b.Get(strip.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("strip should expire even outside tracon, got %v", err)
	}
}

func TestReenteringTerminalRestartsCountdown(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})

	clock.Advance(7 * time.Second)
	if err := b.Transfer(strip.ID, StationTower); err != nil {
		t.Fatalf("Transfer out: %v", err)
	}
	if err := b.Transfer(strip.ID, StationTracon); err != nil {
		t.Fatalf("Transfer back: %v", err)
	}
	if remaining, counting := b.Remaining(strip.ID); !counting || remaining != 10 {
		t.Fatalf("expected fresh countdown at 10, got %d (counting=%v)", remaining, counting)
	}
}

func TestManualRemovalDuringCountdown(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})

	clock.Advance(3 * time.Second)
	if err := b.Remove(strip.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// The countdown is gone with the strip; later ticks must be inert.
	clock.Advance(time.Minute)
	if sink.count(EventExpired) != 0 {
		t.Fatal("removed strip must not expire")
	}
	if _, counting := b.Remaining(strip.ID); counting {
		t.Fatal("countdown should have been cancelled by removal")
	}
}

func TestReorderWithinTerminalKeepsCountdown(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())
	a, _ := b.Create(Strip{Callsign: "AAL1", AircraftType: "B738", Station: StationTracon})
	if _, err := b.Create(Strip{Callsign: "UAL2", AircraftType: "A320", Station: StationTracon}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	clock.Advance(2 * time.Second)
	if err := b.Reorder(StationTracon, 0, 1); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if remaining, counting := b.Remaining(a.ID); !counting || remaining != 8 {
		t.Fatalf("reorder within tracon must not disturb the countdown, got %d (counting=%v)", remaining, counting)
	}
}
