package dtos

// DropRequest places a strip at a target: either onto a station bay or
// adjacent to another strip. Exactly one of Station or StripID is set.
type DropRequest struct {
	Station string `json:"station,omitempty"`
	StripID string `json:"strip_id,omitempty"`
}

// ReorderRequest moves a strip within its station bay.
type ReorderRequest struct {
	Station string `json:"station"`
	From    int    `json:"from"`
	To      int    `json:"to"`
}

// TransferRequest moves a strip to another station, optionally at an index.
type TransferRequest struct {
	Station string `json:"station"`
	Index   *int   `json:"index,omitempty"`
}

// NotesRequest carries scratchpad text for a strip.
type NotesRequest struct {
	Text string `json:"text"`
}

// AssistantCommandRequest is a voice-assistant originated mutation keyed by
// callsign rather than strip id.
type AssistantCommandRequest struct {
	Command  string `json:"command"`
	Callsign string `json:"callsign"`
	Field    string `json:"field,omitempty"`
	Value    string `json:"value,omitempty"`
	Station  string `json:"station,omitempty"`
}
