package strips

import "time"

// Countdown states. A strip not present in the scheduler's active set is
// Idle; it enters Counting when transferred into the terminal station and
// Expired when its count reaches zero.
type countdownState int

const (
	countingState countdownState = iota
	expiredState
)

type countdown struct {
	stripID   string
	remaining int
	state     countdownState
	timer     Timer
}

// Scheduler drives the per-strip expiry countdowns for the terminal
// station. Counts start at a fixed duration and decrement once per second;
// at zero the bound strip is removed from the board. All state changes run
// through the board's run hook, so ticks are serialized with every other
// mutation and never observe a transfer mid-flight.
type Scheduler struct {
	clock   Clock
	seconds int
	active  map[string]*countdown

	// run executes f as a discrete board step; expire removes the strip
	// once its countdown hits zero. Both are installed by the board.
	run    func(f func())
	expire func(stripID string)
}

// NewScheduler returns a scheduler counting down from the given number of
// seconds. The run and expire hooks must be installed before Start is
// called.
func NewScheduler(clock Clock, seconds int) *Scheduler {
	return &Scheduler{
		clock:   clock,
		seconds: seconds,
		active:  make(map[string]*countdown),
	}
}

func (sc *Scheduler) bind(run func(func()), expire func(string)) {
	sc.run = run
	sc.expire = expire
}

// Start moves the strip's countdown from Idle to Counting. Starting an
// already-counting strip restarts its count.
func (sc *Scheduler) Start(stripID string) {
	sc.Cancel(stripID)
	cd := &countdown{stripID: stripID, remaining: sc.seconds, state: countingState}
	sc.active[stripID] = cd
	sc.arm(cd)
}

// Cancel returns the strip's countdown to Idle without removing the strip.
// Cancelling an idle strip is a no-op.
func (sc *Scheduler) Cancel(stripID string) {
	cd, ok := sc.active[stripID]
	if !ok {
		return
	}
	if cd.timer != nil {
		cd.timer.Stop()
	}
	delete(sc.active, stripID)
}

// Remaining reports the seconds left on the strip's countdown, and whether
// one is running.
func (sc *Scheduler) Remaining(stripID string) (int, bool) {
	cd, ok := sc.active[stripID]
	if !ok {
		return 0, false
	}
	return cd.remaining, true
}

func (sc *Scheduler) arm(cd *countdown) {
	cd.timer = sc.clock.AfterFunc(time.Second, func() {
		sc.run(func() { sc.tick(cd) })
	})
}

// tick runs under the board lock. The identity check discards ticks from
// timers that lost a race with Cancel or a restart.
func (sc *Scheduler) tick(cd *countdown) {
	if sc.active[cd.stripID] != cd || cd.state != countingState {
		return
	}
	cd.remaining--
	if cd.remaining > 0 {
		sc.arm(cd)
		return
	}
	cd.state = expiredState
	delete(sc.active, cd.stripID)
	sc.expire(cd.stripID)
}
