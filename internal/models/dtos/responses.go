package dtos

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// Airport is one entry of the monitored-airport registry.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Aircraft is one live position as served to the dashboard.
type Aircraft struct {
	Hex          string  `json:"hex"`
	Callsign     string  `json:"callsign"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AltitudeFt   int     `json:"altitude_ft"`
	GroundSpeed  float64 `json:"ground_speed_kt"`
	Track        float64 `json:"track"`
	AircraftType string  `json:"aircraft_type,omitempty"`
	Squawk       string  `json:"squawk,omitempty"`
	OnGround     bool    `json:"on_ground"`
}

// AircraftArea bundles the aircraft near an airport with fetch metadata.
type AircraftArea struct {
	Airport   string     `json:"airport"`
	RadiusNM  int        `json:"radius_nm"`
	Aircraft  []Aircraft `json:"aircraft"`
	Source    string     `json:"source"`
	FetchedAt string     `json:"fetched_at"`
}
