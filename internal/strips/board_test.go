package strips

import (
	"errors"
	"testing"
	"time"
)

func TestSeedHonorsIDsAndStartsTerminalCountdowns(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	err := b.Seed([]Strip{
		{ID: "1", Callsign: "AAL100", AircraftType: "B738", Station: StationClearance},
		{ID: "2", Callsign: "UAL200", AircraftType: "A320", Station: StationTracon},
	})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if _, err := b.Get("1"); err != nil {
		t.Fatalf("seeded strip missing: %v", err)
	}
	if remaining, counting := b.Remaining("2"); !counting || remaining != 10 {
		t.Fatalf("tracon seed should be counting from 10, got %d (counting=%v)", remaining, counting)
	}
	if _, counting := b.Remaining("1"); counting {
		t.Fatal("non-terminal seed must not count down")
	}
}

func TestSeedRejectsInvalidRecord(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	err := b.Seed([]Strip{{Callsign: "AAL100"}})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGroundReorderScenario(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	a, _ := b.Create(Strip{Callsign: "AAL1", AircraftType: "B738", Station: StationGround})
	c, _ := b.Create(Strip{Callsign: "UAL2", AircraftType: "A320", Station: StationGround})

	if err := b.Reorder(StationGround, 0, 1); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	ground := b.Views()[StationGround]
	if ground[0].ID != c.ID || ground[1].ID != a.ID {
		t.Fatalf("expected reversed order, got %v then %v", ground[0].Callsign, ground[1].Callsign)
	}

	if err := b.Reorder(StationGround, 0, 0); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	ground = b.Views()[StationGround]
	if ground[0].ID != c.ID || ground[1].ID != a.ID {
		t.Fatal("equal-index reorder changed the order")
	}
}

func TestAssistantMoveStrip(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationClearance})

	if err := b.MoveStrip("aal100", StationTracon); err != nil {
		t.Fatalf("MoveStrip: %v", err)
	}
	moved, _ := b.Get(strip.ID)
	if moved.Station != StationTracon {
		t.Fatalf("expected tracon, got %s", moved.Station)
	}
	if remaining, counting := b.Remaining(strip.ID); !counting || remaining != 10 {
		t.Fatalf("assistant transfer into tracon must start the countdown, got %d", remaining)
	}

	// Unknown callsign: tolerated, nothing moves.
	if err := b.MoveStrip("GHOST1", StationGround); err != nil {
		t.Fatalf("unknown callsign must be a silent no-op, got %v", err)
	}

	var itErr *InvalidTransitionError
	if err := b.MoveStrip("AAL100", "ramp"); !errors.As(err, &itErr) {
		t.Fatalf("invalid station must be rejected, got %v", err)
	}
}

func TestAssistantUpdatesBypassDebounce(t *testing.T) {
	b, _, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738"})

	if err := b.UpdateSquawk("AAL100", "7421"); err != nil {
		t.Fatalf("UpdateSquawk: %v", err)
	}
	if err := b.UpdateNotes("AAL100", "cleared direct MOLEN"); err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}

	got, _ := b.Get(strip.ID)
	if got.Squawk != "7421" || got.Notes != "cleared direct MOLEN" {
		t.Fatalf("expected immediate updates, got squawk=%q notes=%q", got.Squawk, got.Notes)
	}
	if n := sink.count(EventFieldUpdated); n != 2 {
		t.Fatalf("expected 2 field updates, got %d", n)
	}
}

func TestUpdateByCallsignUnknownCallsign(t *testing.T) {
	b, _, sink := newTestBoard(t, DefaultConfig())
	before, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Squawk: "1200"})

	if err := b.UpdateByCallsign("NOPE99", "squawk", "7500"); err != nil {
		t.Fatalf("unknown callsign must not error, got %v", err)
	}
	got, _ := b.Get(before.ID)
	if got.Squawk != "1200" {
		t.Fatal("no strip may be mutated for an unknown callsign")
	}
	if n := sink.count(EventFieldUpdated); n != 0 {
		t.Fatalf("no events expected, got %d", n)
	}
}

func TestUpdateByCallsignUnknownField(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	b.Create(Strip{Callsign: "AAL100", AircraftType: "B738"}) //nolint:errcheck

	var vErr *ValidationError
	if err := b.UpdateByCallsign("AAL100", "station", "tracon"); !errors.As(err, &vErr) {
		t.Fatalf("structural fields must be rejected, got %v", err)
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())

	var snapshots []map[Station][]Strip
	b.Subscribe(func(v map[Station][]Strip) { snapshots = append(snapshots, v) })

	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})
	if len(snapshots) != 1 {
		t.Fatalf("expected snapshot after create, got %d", len(snapshots))
	}

	clock.Advance(10 * time.Second)
	if len(snapshots) != 2 {
		t.Fatalf("expected snapshot after expiry, got %d", len(snapshots))
	}
	last := snapshots[len(snapshots)-1]
	if len(last[StationTracon]) != 0 {
		t.Fatal("post-expiry snapshot still shows the strip")
	}

	// Earlier snapshots are stable history, not views into the store.
	if snapshots[0][StationTracon][0].ID != strip.ID {
		t.Fatal("first snapshot lost the created strip")
	}
}

func TestDropThroughBoard(t *testing.T) {
	b, _, sink := newTestBoard(t, DefaultConfig())
	a, _ := b.Create(Strip{Callsign: "AAL1", AircraftType: "B738", Station: StationClearance})
	anchor, _ := b.Create(Strip{Callsign: "UAL2", AircraftType: "A320", Station: StationTracon})

	if err := b.Drop(a.ID, DropTarget{StripID: anchor.ID}); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	tracon := b.Views()[StationTracon]
	if len(tracon) != 2 || tracon[0].ID != a.ID {
		t.Fatalf("expected drop adjacent to anchor, got %v", tracon)
	}
	if _, counting := b.Remaining(a.ID); !counting {
		t.Fatal("drop into tracon must start the countdown")
	}
	if sink.count(EventTransferred) != 1 {
		t.Fatalf("expected transfer event, got %d", sink.count(EventTransferred))
	}

	if err := b.Drop(a.ID, DropTarget{StripID: a.ID}); err != nil {
		t.Fatalf("self drop: %v", err)
	}
	if sink.count(EventTransferred) != 1 {
		t.Fatal("self drop must not emit events")
	}
}
