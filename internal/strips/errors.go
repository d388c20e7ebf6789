package strips

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a strip lookup by id or callsign misses.
var ErrNotFound = errors.New("strip not found")

// ValidationError reports a create call with a missing or unusable field.
// It is always surfaced to the caller, never swallowed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidTransitionError reports a structural operation that would corrupt
// the board ordering, such as a reorder with an out-of-range index. The
// board is left unchanged when one is returned.
type InvalidTransitionError struct {
	Op     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Reason)
}
