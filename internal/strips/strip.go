package strips

// Strip is the digital equivalent of one paper flight-progress strip. A
// strip belongs to exactly one station at all times; its position inside
// that station's bay is tracked by the store, not by the strip itself.
type Strip struct {
	ID           string  `json:"id" yaml:"id"`
	Callsign     string  `json:"callsign" yaml:"callsign"`
	AircraftType string  `json:"aircraft_type" yaml:"aircraft_type"`
	Squawk       string  `json:"squawk" yaml:"squawk"`
	Altitude     string  `json:"altitude" yaml:"altitude"`
	Route        string  `json:"route" yaml:"route"`
	Fixes        string  `json:"fixes" yaml:"fixes"`
	ETA          string  `json:"eta" yaml:"eta"`
	Notes        string  `json:"notes" yaml:"notes"`
	Station      Station `json:"station" yaml:"station"`
}

// Patch is a partial update of a strip's non-structural fields. Station and
// bay position are deliberately absent: they change only through the
// placement engine so the ordering invariant cannot be bypassed.
type Patch struct {
	Squawk   *string `json:"squawk,omitempty"`
	Altitude *string `json:"altitude,omitempty"`
	Route    *string `json:"route,omitempty"`
	Fixes    *string `json:"fixes,omitempty"`
	ETA      *string `json:"eta,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// FieldPatch builds a Patch that sets a single field addressed by its wire
// name. Returns false for unknown or structural field names.
func FieldPatch(field, value string) (Patch, bool) {
	var p Patch
	switch field {
	case "squawk":
		p.Squawk = &value
	case "altitude":
		p.Altitude = &value
	case "route":
		p.Route = &value
	case "fixes":
		p.Fixes = &value
	case "eta":
		p.ETA = &value
	case "notes":
		p.Notes = &value
	default:
		return Patch{}, false
	}
	return p, true
}

func (p Patch) apply(s *Strip) {
	if p.Squawk != nil {
		s.Squawk = *p.Squawk
	}
	if p.Altitude != nil {
		s.Altitude = *p.Altitude
	}
	if p.Route != nil {
		s.Route = *p.Route
	}
	if p.Fixes != nil {
		s.Fixes = *p.Fixes
	}
	if p.ETA != nil {
		s.ETA = *p.ETA
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}
