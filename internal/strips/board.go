package strips

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Config carries the tunables of the strip workflow engine.
type Config struct {
	// ExpirySeconds is the countdown started when a strip enters the
	// terminal station.
	ExpirySeconds int
	// Debounce is the quiet period after which buffered note edits are
	// committed.
	Debounce time.Duration
	// CancelOnExit controls whether transferring a strip out of the
	// terminal station before expiry cancels its countdown. When false the
	// countdown keeps running and removes the strip wherever it sits.
	CancelOnExit bool
}

// DefaultConfig mirrors the observed dashboard behavior: a 10 second
// handoff countdown and a 500 ms note-commit debounce.
func DefaultConfig() Config {
	return Config{
		ExpirySeconds: 10,
		Debounce:      500 * time.Millisecond,
		CancelOnExit:  true,
	}
}

// Board composes the strip store, placement engine, expiry scheduler and
// annotation service behind a single mutex, so every mutation source — a
// drag gesture, an assistant call, a timer tick — executes as one discrete
// step and no reader ever observes a state mid-mutation.
type Board struct {
	mu    sync.Mutex
	cfg   Config
	clock Clock
	store *Store
	sched *Scheduler
	notes *Annotator
	sinks []EventSink
	subs  []func(map[Station][]Strip)
}

// NewBoard wires an empty board. Event sinks receive every applied
// mutation; pass none to run without an audit trail.
func NewBoard(cfg Config, clock Clock, sinks ...EventSink) *Board {
	if cfg.ExpirySeconds <= 0 {
		cfg.ExpirySeconds = DefaultConfig().ExpirySeconds
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	if clock == nil {
		clock = SystemClock()
	}
	b := &Board{
		cfg:   cfg,
		clock: clock,
		store: NewStore(),
		sched: NewScheduler(clock, cfg.ExpirySeconds),
		notes: NewAnnotator(clock, cfg.Debounce),
		sinks: sinks,
	}
	b.sched.bind(b.step, b.expire)
	b.notes.bind(b.step, b.commitNotes)
	return b
}

// step executes f as one serialized board mutation. Timer callbacks enter
// the board exclusively through here.
func (b *Board) step(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f()
}

// Subscribe registers a view-projection consumer, invoked with a fresh
// snapshot after every applied mutation. Callbacks run while the board is
// locked and must not call back into it.
func (b *Board) Subscribe(fn func(map[Station][]Strip)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Seed loads the initial strip population. Supplied ids are honored;
// strips seeded into the terminal station start counting down immediately.
func (b *Board) Seed(seed []Strip) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, fields := range seed {
		strip, err := b.store.Create(fields)
		if err != nil {
			return fmt.Errorf("seeding %q: %w", fields.Callsign, err)
		}
		if strip.Station.Terminal() {
			b.sched.Start(strip.ID)
		}
	}
	b.publish()
	return nil
}

// Create adds a new strip. An empty id is assigned; callsign and aircraft
// type are required. Creating directly into the terminal station starts
// the handoff countdown, same as a transfer would.
func (b *Board) Create(fields Strip) (Strip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	strip, err := b.store.Create(fields)
	if err != nil {
		return Strip{}, err
	}
	if strip.Station.Terminal() {
		b.sched.Start(strip.ID)
	}
	b.record(EventCreated, strip, "")
	b.publish()
	return strip, nil
}

// Get returns a copy of the strip with the given id.
func (b *Board) Get(id string) (Strip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Get(id)
}

// FindByCallsign returns the first strip matching the callsign
// case-insensitively.
func (b *Board) FindByCallsign(callsign string) (Strip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.FindByCallsign(callsign)
}

// Mutate applies a non-structural patch to a strip.
func (b *Board) Mutate(id string, p Patch) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.store.Mutate(id, p); err != nil {
		return err
	}
	strip, _ := b.store.Get(id)
	b.record(EventFieldUpdated, strip, "")
	b.publish()
	return nil
}

// Remove deletes a strip, cancelling any running countdown and any pending
// note commit bound to it.
func (b *Board) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	strip, err := b.store.Get(id)
	if err != nil {
		return err
	}
	if err := b.store.Remove(id); err != nil {
		return err
	}
	b.sched.Cancel(id)
	b.notes.Cancel(id)
	b.record(EventRemoved, strip, "")
	b.publish()
	return nil
}

// Reorder moves a strip within one station's bay.
func (b *Board) Reorder(station Station, fromIndex, toIndex int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.store.Reorder(station, fromIndex, toIndex); err != nil {
		return err
	}
	if fromIndex != toIndex {
		id := b.store.bays[station][toIndex]
		strip, _ := b.store.Get(id)
		b.record(EventReordered, strip, fmt.Sprintf("%d->%d", fromIndex, toIndex))
	}
	b.publish()
	return nil
}

// Transfer moves a strip between stations, appending when no index is
// given. Entering the terminal station starts the handoff countdown;
// leaving it cancels the countdown when the board is configured to.
func (b *Board) Transfer(id string, target Station, targetIndex ...int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transferLocked(id, target, targetIndex...)
}

// Drop resolves a gesture-end drop target and applies the resulting
// reorder or transfer.
func (b *Board) Drop(id string, target DropTarget) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if target.StripID == "" || target.StripID == id {
		if target.StripID == id {
			return nil
		}
		return b.transferLocked(id, target.Station)
	}

	before, err := b.store.Get(id)
	if err != nil {
		return err
	}
	anchor, err := b.store.Get(target.StripID)
	if err != nil {
		return err
	}
	if anchor.Station == before.Station {
		if err := b.store.ResolveDrop(id, target); err != nil {
			return err
		}
		strip, _ := b.store.Get(id)
		b.record(EventReordered, strip, "drop on "+anchor.Callsign)
		b.publish()
		return nil
	}
	_, at, _ := b.store.IndexOf(target.StripID)
	return b.transferLocked(id, anchor.Station, at)
}

func (b *Board) transferLocked(id string, target Station, targetIndex ...int) error {
	before, err := b.store.Get(id)
	if err != nil {
		return err
	}
	if err := b.store.Transfer(id, target, targetIndex...); err != nil {
		return err
	}
	wasTerminal := before.Station.Terminal()
	if target.Terminal() && !wasTerminal {
		b.sched.Start(id)
	}
	if wasTerminal && !target.Terminal() && b.cfg.CancelOnExit {
		b.sched.Cancel(id)
	}
	strip, _ := b.store.Get(id)
	b.record(EventTransferred, strip, string(before.Station)+"->"+string(target))
	b.publish()
	return nil
}

// EditNotes buffers an in-progress note edit and (re)arms the debounce
// window. The store is untouched until the window elapses or CommitNotes
// is called.
func (b *Board) EditNotes(id, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.store.Get(id); err != nil {
		return err
	}
	b.notes.Edit(id, text)
	return nil
}

// CommitNotes flushes the strip's buffered notes immediately.
func (b *Board) CommitNotes(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.store.Get(id); err != nil {
		return err
	}
	b.notes.Commit(id)
	return nil
}

// CancelNotes discards the strip's buffered notes, leaving the stored text
// unchanged from before the edit began.
func (b *Board) CancelNotes(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.store.Get(id); err != nil {
		return err
	}
	b.notes.Cancel(id)
	return nil
}

// UpdateByCallsign applies an immediate single-field update addressed by
// callsign, the path the external assistant uses. An unmatched callsign is
// a silent no-op; an unknown field name is a caller bug and errors.
func (b *Board) UpdateByCallsign(callsign, field, value string) error {
	p, ok := FieldPatch(field, value)
	if !ok {
		return &ValidationError{Field: field, Reason: "unknown field"}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	strip, err := b.store.FindByCallsign(callsign)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := b.store.Mutate(strip.ID, p); err != nil {
		return err
	}
	updated, _ := b.store.Get(strip.ID)
	b.record(EventFieldUpdated, updated, field)
	b.publish()
	return nil
}

// MoveStrip transfers the strip with the given callsign to the target
// station, appending to that bay. An unmatched callsign is a silent no-op.
func (b *Board) MoveStrip(callsign string, target Station) error {
	if !target.Valid() {
		return &InvalidTransitionError{Op: "transfer", Reason: "unknown station " + string(target)}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	strip, err := b.store.FindByCallsign(callsign)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return b.transferLocked(strip.ID, target)
}

// UpdateNotes replaces the strip's notes immediately, bypassing the
// debounce layer, addressed by callsign.
func (b *Board) UpdateNotes(callsign, text string) error {
	return b.UpdateByCallsign(callsign, "notes", text)
}

// UpdateSquawk replaces the strip's squawk code, addressed by callsign.
func (b *Board) UpdateSquawk(callsign, code string) error {
	return b.UpdateByCallsign(callsign, "squawk", code)
}

// Remaining reports the seconds left on the strip's handoff countdown.
func (b *Board) Remaining(id string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sched.Remaining(id)
}

// Views returns the per-station ordered view projection. The snapshot
// shares no memory with the board.
func (b *Board) Views() map[Station][]Strip {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Snapshot()
}

// Len returns the number of strips on the board.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Len()
}

// expire runs under the board lock when a countdown reaches zero. A strip
// already removed by a racing manual deletion is a no-op, not an error.
func (b *Board) expire(id string) {
	strip, err := b.store.Get(id)
	if err != nil {
		return
	}
	if err := b.store.Remove(id); err != nil {
		return
	}
	b.notes.Cancel(id)
	b.record(EventExpired, strip, "")
	b.publish()
}

// commitNotes runs under the board lock when a debounce window elapses. A
// strip removed while its window was pending commits nothing.
func (b *Board) commitNotes(id, text string) {
	if err := b.store.Mutate(id, Patch{Notes: &text}); err != nil {
		return
	}
	strip, _ := b.store.Get(id)
	b.record(EventNotesCommitted, strip, "")
	b.publish()
}

func (b *Board) record(t EventType, strip Strip, detail string) {
	if len(b.sinks) == 0 {
		return
	}
	ev := Event{
		Type:     t,
		StripID:  strip.ID,
		Callsign: strip.Callsign,
		Station:  strip.Station,
		Detail:   detail,
		At:       b.clock.Now(),
	}
	for _, sink := range b.sinks {
		sink.Record(ev)
	}
}

func (b *Board) publish() {
	if len(b.subs) == 0 {
		return
	}
	snap := b.store.Snapshot()
	for _, fn := range b.subs {
		fn(snap)
	}
}
