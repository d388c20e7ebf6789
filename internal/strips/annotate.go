package strips

import "time"

type noteBuffer struct {
	stripID string
	text    string
	timer   Timer
}

// Annotator holds in-progress free-text note edits and commits them to the
// store after a quiet period, so every keystroke is not a store mutation.
// Buffers are per strip and independent: editing one strip never delays
// another strip's pending commit. Like the scheduler, all timer callbacks
// route through the board's run hook.
type Annotator struct {
	clock    Clock
	debounce time.Duration
	buffers  map[string]*noteBuffer

	run    func(f func())
	commit func(stripID, text string)
}

// NewAnnotator returns an annotator committing after the given quiet
// period. The run and commit hooks must be installed before Edit is called.
func NewAnnotator(clock Clock, debounce time.Duration) *Annotator {
	return &Annotator{
		clock:    clock,
		debounce: debounce,
		buffers:  make(map[string]*noteBuffer),
	}
}

func (a *Annotator) bind(run func(func()), commit func(string, string)) {
	a.run = run
	a.commit = commit
}

// Edit replaces the strip's edit buffer and re-arms its debounce window.
func (a *Annotator) Edit(stripID, text string) {
	buf, ok := a.buffers[stripID]
	if !ok {
		buf = &noteBuffer{stripID: stripID}
		a.buffers[stripID] = buf
	}
	buf.text = text
	if buf.timer != nil {
		buf.timer.Stop()
	}
	current := buf
	buf.timer = a.clock.AfterFunc(a.debounce, func() {
		a.run(func() { a.flush(current) })
	})
}

// Commit writes the buffered text to the store immediately, used by
// explicit saves and edit-panel closes. A no-op when nothing is buffered.
func (a *Annotator) Commit(stripID string) {
	if buf, ok := a.buffers[stripID]; ok {
		a.flush(buf)
	}
}

// Cancel discards the strip's buffer, leaving the store's notes exactly as
// they were before editing began.
func (a *Annotator) Cancel(stripID string) {
	buf, ok := a.buffers[stripID]
	if !ok {
		return
	}
	if buf.timer != nil {
		buf.timer.Stop()
	}
	delete(a.buffers, stripID)
}

// Pending reports whether the strip has an uncommitted buffer.
func (a *Annotator) Pending(stripID string) bool {
	_, ok := a.buffers[stripID]
	return ok
}

// flush runs under the board lock. The identity check discards debounce
// fires that lost a race with Commit, Cancel or strip removal.
func (a *Annotator) flush(buf *noteBuffer) {
	if a.buffers[buf.stripID] != buf {
		return
	}
	if buf.timer != nil {
		buf.timer.Stop()
	}
	delete(a.buffers, buf.stripID)
	a.commit(buf.stripID, buf.text)
}
