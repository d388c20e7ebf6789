package strips

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
)

// Store is the authoritative ordered collection of strips, keyed by id and
// grouped into per-station bays. It is a plain data structure: the Board
// serializes all access, so Store methods themselves take no locks.
//
// Invariant, held after every method returns: each strip id appears in
// exactly one bay, at exactly one index, and the strip's Station field
// matches the bay holding it.
type Store struct {
	strips map[string]*Strip
	bays   map[Station][]string
}

// NewStore returns an empty store with one bay per registered station.
func NewStore() *Store {
	bays := make(map[Station][]string, len(AllStations()))
	for _, st := range AllStations() {
		bays[st] = nil
	}
	return &Store{
		strips: make(map[string]*Strip),
		bays:   bays,
	}
}

// Create validates the supplied fields and appends the strip to the end of
// its initial station's bay. Callsign and aircraft type are required; an
// empty station defaults to clearance delivery. A fresh id is assigned
// unless the caller supplied one, which seeding relies on; ids are never
// reused.
func (s *Store) Create(fields Strip) (Strip, error) {
	if strings.TrimSpace(fields.Callsign) == "" {
		return Strip{}, &ValidationError{Field: "callsign"}
	}
	if strings.TrimSpace(fields.AircraftType) == "" {
		return Strip{}, &ValidationError{Field: "aircraft_type"}
	}
	if fields.Station == "" {
		fields.Station = StationClearance
	}
	if !fields.Station.Valid() {
		return Strip{}, &ValidationError{Field: "station", Reason: "unknown station " + string(fields.Station)}
	}

	if fields.ID == "" {
		fields.ID = uuid.NewString()
	} else if _, taken := s.strips[fields.ID]; taken {
		return Strip{}, &ValidationError{Field: "id", Reason: "id already in use"}
	}
	strip := fields
	s.strips[strip.ID] = &strip
	s.bays[strip.Station] = append(s.bays[strip.Station], strip.ID)
	return strip, nil
}

// Get returns a copy of the strip with the given id.
func (s *Store) Get(id string) (Strip, error) {
	strip, ok := s.strips[id]
	if !ok {
		return Strip{}, ErrNotFound
	}
	return *strip, nil
}

// FindByCallsign returns the first strip whose callsign matches
// case-insensitively, scanning bays in station order so the result is
// deterministic when callsigns collide.
func (s *Store) FindByCallsign(callsign string) (Strip, error) {
	for _, st := range AllStations() {
		for _, id := range s.bays[st] {
			if strings.EqualFold(s.strips[id].Callsign, callsign) {
				return *s.strips[id], nil
			}
		}
	}
	return Strip{}, ErrNotFound
}

// Mutate applies a partial update to the strip's non-structural fields.
func (s *Store) Mutate(id string, p Patch) error {
	strip, ok := s.strips[id]
	if !ok {
		return ErrNotFound
	}
	p.apply(strip)
	return nil
}

// Remove deletes the strip from the store and its bay.
func (s *Store) Remove(id string) error {
	strip, ok := s.strips[id]
	if !ok {
		return ErrNotFound
	}
	bay := s.bays[strip.Station]
	for i, sid := range bay {
		if sid == id {
			s.bays[strip.Station] = append(bay[:i], bay[i+1:]...)
			break
		}
	}
	delete(s.strips, id)
	return nil
}

// Len returns the number of strips on the board.
func (s *Store) Len() int { return len(s.strips) }

// IndexOf returns the strip's position within its station's bay.
func (s *Store) IndexOf(id string) (Station, int, error) {
	strip, ok := s.strips[id]
	if !ok {
		return "", 0, ErrNotFound
	}
	for i, sid := range s.bays[strip.Station] {
		if sid == id {
			return strip.Station, i, nil
		}
	}
	// Unreachable while the ordering invariant holds.
	return "", 0, ErrNotFound
}

// Snapshot materializes the view projection: per-station ordered slices of
// strip values. The result shares no memory with the store, so renderers
// and the websocket hub can hold it across later mutations.
func (s *Store) Snapshot() map[Station][]Strip {
	views := make(map[Station][]Strip, len(s.bays))
	for _, st := range AllStations() {
		bay := make([]Strip, 0, len(s.bays[st]))
		for _, id := range s.bays[st] {
			bay = append(bay, *s.strips[id])
		}
		views[st] = deepcopy.Copy(bay).([]Strip)
	}
	return views
}
