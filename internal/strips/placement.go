package strips

import "fmt"

// DropTarget describes where a drag gesture ended. Exactly one addressing
// mode is used: a bare station (append to that bay) or another strip
// (position adjacent to it). Targets are resolved at gesture end, not
// continuously during the drag.
type DropTarget struct {
	Station Station `json:"station,omitempty"`
	StripID string  `json:"strip_id,omitempty"`
}

// Reorder moves the strip at fromIndex to toIndex within one station's bay.
// Both indexes must address existing positions; equal indexes are a no-op,
// matching zero-distance "drops" from the gesture layer.
func (s *Store) Reorder(station Station, fromIndex, toIndex int) error {
	if !station.Valid() {
		return &InvalidTransitionError{Op: "reorder", Reason: "unknown station " + string(station)}
	}
	bay := s.bays[station]
	if fromIndex < 0 || fromIndex >= len(bay) {
		return &InvalidTransitionError{Op: "reorder", Reason: fmt.Sprintf("from index %d out of range [0,%d)", fromIndex, len(bay))}
	}
	if toIndex < 0 || toIndex >= len(bay) {
		return &InvalidTransitionError{Op: "reorder", Reason: fmt.Sprintf("to index %d out of range [0,%d)", toIndex, len(bay))}
	}
	if fromIndex == toIndex {
		return nil
	}

	id := bay[fromIndex]
	bay = append(bay[:fromIndex], bay[fromIndex+1:]...)
	bay = append(bay, "")
	copy(bay[toIndex+1:], bay[toIndex:])
	bay[toIndex] = id
	s.bays[station] = bay
	return nil
}

// Transfer moves the strip into the target station's bay at targetIndex,
// appending when no index is given. Indexes are clamped into the bay, so a
// transfer to any registered station always succeeds. Transferring within
// the strip's current station degenerates to a reorder.
func (s *Store) Transfer(id string, target Station, targetIndex ...int) error {
	strip, ok := s.strips[id]
	if !ok {
		return ErrNotFound
	}
	if !target.Valid() {
		return &InvalidTransitionError{Op: "transfer", Reason: "unknown station " + string(target)}
	}

	if strip.Station == target {
		bay := s.bays[target]
		from := indexIn(bay, id)
		to := len(bay) - 1
		if len(targetIndex) > 0 {
			to = clamp(targetIndex[0], 0, len(bay)-1)
		}
		return s.Reorder(target, from, to)
	}

	src := s.bays[strip.Station]
	from := indexIn(src, id)
	s.bays[strip.Station] = append(src[:from], src[from+1:]...)

	dst := s.bays[target]
	at := len(dst)
	if len(targetIndex) > 0 {
		at = clamp(targetIndex[0], 0, len(dst))
	}
	dst = append(dst, "")
	copy(dst[at+1:], dst[at:])
	dst[at] = id
	s.bays[target] = dst

	strip.Station = target
	return nil
}

// ResolveDrop maps a gesture-end drop onto a reorder or transfer per the
// placement rules: a station target appends, a strip target in the same
// station reorders to the target's slot, a strip target in another station
// transfers adjacent to it. Dropping a strip onto itself is a no-op.
func (s *Store) ResolveDrop(id string, target DropTarget) error {
	if _, ok := s.strips[id]; !ok {
		return ErrNotFound
	}

	if target.StripID == "" {
		if !target.Station.Valid() {
			return &InvalidTransitionError{Op: "drop", Reason: "unknown station " + string(target.Station)}
		}
		return s.Transfer(id, target.Station)
	}

	if target.StripID == id {
		return nil
	}
	anchor, ok := s.strips[target.StripID]
	if !ok {
		return ErrNotFound
	}

	src := s.strips[id].Station
	anchorIdx := indexIn(s.bays[anchor.Station], target.StripID)
	if anchor.Station == src {
		return s.Reorder(src, indexIn(s.bays[src], id), anchorIdx)
	}
	return s.Transfer(id, anchor.Station, anchorIdx)
}

func indexIn(bay []string, id string) int {
	for i, sid := range bay {
		if sid == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
