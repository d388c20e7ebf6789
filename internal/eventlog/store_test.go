package eventlog

import (
	"context"
	"testing"
	"time"

	"towerboard/internal/strips"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return NewStore(db)
}

func TestInsertAndRecent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for i, typ := range []string{"created", "transferred", "expired"} {
		err := store.Insert(ctx, &Entry{
			EventType: typ,
			StripID:   "strip-1",
			Callsign:  "AAL100",
			Station:   "tracon",
			At:        time.Now().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].EventType != "expired" {
		t.Fatalf("expected newest first, got %q", recent[0].EventType)
	}
}

func TestForStripReturnsOldestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, typ := range []string{"created", "notes_committed"} {
		if err := store.Insert(ctx, &Entry{EventType: typ, StripID: "s1"}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := store.Insert(ctx, &Entry{EventType: "created", StripID: "s2"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	history, err := store.ForStrip(ctx, "s1")
	if err != nil {
		t.Fatalf("ForStrip: %v", err)
	}
	if len(history) != 2 || history[0].EventType != "created" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestSinkPersistsBoardEvents(t *testing.T) {
	store := setupTestStore(t)
	sink := NewSink(store)

	sink.Record(strips.Event{
		Type:     strips.EventCreated,
		StripID:  "s1",
		Callsign: "AAL100",
		Station:  strips.StationClearance,
		At:       time.Now(),
	})
	sink.Record(strips.Event{
		Type:    strips.EventExpired,
		StripID: "s1",
		Station: strips.StationTracon,
		At:      time.Now(),
	})
	sink.Close()

	recent, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 persisted events, got %d", len(recent))
	}
	if recent[0].EventType != string(strips.EventExpired) {
		t.Fatalf("expected expired newest, got %q", recent[0].EventType)
	}
}

func TestSinkToleratesLateEventsAfterClose(t *testing.T) {
	store := setupTestStore(t)
	sink := NewSink(store)

	sink.Record(strips.Event{Type: strips.EventCreated, StripID: "s1", At: time.Now()})
	sink.Close()

	// A countdown can still expire while the process shuts down; the late
	// event must be dropped, not panic the writer.
	sink.Record(strips.Event{Type: strips.EventExpired, StripID: "s1", At: time.Now()})
	sink.Close()

	recent, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 || recent[0].EventType != string(strips.EventCreated) {
		t.Fatalf("expected only the pre-close event persisted, got %+v", recent)
	}
}
