package strips

import "time"

// Timer is the controllable subset of time.Timer the engine needs.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time so expiry countdowns and debounce windows can
// be driven deterministically in tests instead of sleeping.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }
