package strips

import "strings"

// Station identifies one of the fixed controller positions a strip can
// occupy. The constants below are declared in bay order, the left-to-right
// order a controller works a departure through.
type Station string

const (
	StationClearance Station = "clearance"
	StationGround    Station = "ground"
	StationTower     Station = "tower"
	StationTracon    Station = "tracon"
)

// TerminalStation is the TRACON handoff bay. A strip transferred into it
// starts an expiry countdown and is removed from the board when the
// countdown reaches zero.
const TerminalStation = StationTracon

// AllStations lists every registered station in bay order.
func AllStations() []Station {
	return []Station{StationClearance, StationGround, StationTower, StationTracon}
}

// Valid reports whether s is a registered station.
func (s Station) Valid() bool {
	switch s {
	case StationClearance, StationGround, StationTower, StationTracon:
		return true
	}
	return false
}

// Terminal reports whether s is the TRACON handoff bay.
func (s Station) Terminal() bool { return s == TerminalStation }

// ParseStation resolves a station identifier case-insensitively.
func ParseStation(raw string) (Station, bool) {
	s := Station(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}
