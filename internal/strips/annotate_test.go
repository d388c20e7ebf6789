package strips

import (
	"errors"
	"testing"
	"time"
)

func notesOf(t *testing.T, b *Board, id string) string {
	t.Helper()
	strip, err := b.Get(id)
	if err != nil {
		t.Fatalf("Get(%s): %v", id, err)
	}
	return strip.Notes
}

func TestEditThenCancelLeavesNotesUntouched(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Notes: "original"})

	if err := b.EditNotes(strip.ID, "scratch"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}
	if err := b.CancelNotes(strip.ID); err != nil {
		t.Fatalf("CancelNotes: %v", err)
	}

	clock.Advance(time.Minute)
	if got := notesOf(t, b, strip.ID); got != "original" {
		t.Fatalf("cancel must leave stored notes untouched, got %q", got)
	}
}

func TestDebounceCommitsOnceWithFinalText(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738"})

	// Rapid successive edits inside the quiet window.
	for _, text := range []string{"c", "cl", "clr", "clrd rwy 28L"} {
		if err := b.EditNotes(strip.ID, text); err != nil {
			t.Fatalf("EditNotes: %v", err)
		}
		clock.Advance(100 * time.Millisecond)
	}

	if got := notesOf(t, b, strip.ID); got != "" {
		t.Fatalf("notes must not commit before the quiet window elapses, got %q", got)
	}

	clock.Advance(500 * time.Millisecond)
	if got := notesOf(t, b, strip.ID); got != "clrd rwy 28L" {
		t.Fatalf("expected final text committed, got %q", got)
	}
	if n := sink.count(EventNotesCommitted); n != 1 {
		t.Fatalf("expected exactly one commit, got %d", n)
	}

	// Nothing further pending.
	clock.Advance(time.Minute)
	if n := sink.count(EventNotesCommitted); n != 1 {
		t.Fatalf("debounce fired again: %d commits", n)
	}
}

func TestExplicitCommitFlushesImmediately(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738"})

	if err := b.EditNotes(strip.ID, "handed to twr"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}
	if err := b.CommitNotes(strip.ID); err != nil {
		t.Fatalf("CommitNotes: %v", err)
	}
	if got := notesOf(t, b, strip.ID); got != "handed to twr" {
		t.Fatalf("expected immediate commit, got %q", got)
	}

	// The pending debounce timer must not double-commit.
	clock.Advance(time.Minute)
	if n := sink.count(EventNotesCommitted); n != 1 {
		t.Fatalf("expected one commit, got %d", n)
	}
}

func TestDebounceWindowsArePerStrip(t *testing.T) {
	b, clock, _ := newTestBoard(t, DefaultConfig())
	first, _ := b.Create(Strip{Callsign: "AAL1", AircraftType: "B738"})
	second, _ := b.Create(Strip{Callsign: "UAL2", AircraftType: "A320"})

	if err := b.EditNotes(first.ID, "first note"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}
	clock.Advance(300 * time.Millisecond)
	if err := b.EditNotes(second.ID, "second note"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}

	// First strip's window elapses on schedule even though the second is
	// still open.
	clock.Advance(250 * time.Millisecond)
	if got := notesOf(t, b, first.ID); got != "first note" {
		t.Fatalf("first strip should have committed, got %q", got)
	}
	if got := notesOf(t, b, second.ID); got != "" {
		t.Fatalf("second strip committed early: %q", got)
	}

	clock.Advance(300 * time.Millisecond)
	if got := notesOf(t, b, second.ID); got != "second note" {
		t.Fatalf("second strip should have committed, got %q", got)
	}
}

func TestRemovalCancelsPendingCommit(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738"})

	if err := b.EditNotes(strip.ID, "pending"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}
	if err := b.Remove(strip.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	clock.Advance(time.Minute)
	if n := sink.count(EventNotesCommitted); n != 0 {
		t.Fatalf("removed strip must not commit, got %d commits", n)
	}
}

func TestExpiryCancelsPendingCommit(t *testing.T) {
	b, clock, sink := newTestBoard(t, DefaultConfig())
	strip, _ := b.Create(Strip{Callsign: "AAL100", AircraftType: "B738", Station: StationTracon})

	// Open the edit window so close to expiry that the strip is gone
	// before the quiet period elapses.
	clock.Advance(9*time.Second + 800*time.Millisecond)
	if err := b.EditNotes(strip.ID, "won't make it"); err != nil {
		t.Fatalf("EditNotes: %v", err)
	}
	clock.Advance(time.Second)
	if _, err := b.Get(strip.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
	if n := sink.count(EventNotesCommitted); n != 0 {
		t.Fatalf("expired strip must not commit, got %d commits", n)
	}
}

func TestEditNotesUnknownStrip(t *testing.T) {
	b, _, _ := newTestBoard(t, DefaultConfig())
	if err := b.EditNotes("nope", "text"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
