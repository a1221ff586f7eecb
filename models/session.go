package models

import "time"

// SchedulingSession holds context between candidate search and final booking.
type SchedulingSession struct {
	SessionID    string         `json:"sessionId"`
	Request      MeetingRequest `json:"request"`
	Candidates   []Candidate    `json:"candidates"`
	SelectedSlot *time.Time     `json:"selectedSlot,omitempty"`
}

// SchedulingResponse is the wire shape returned by the session endpoints.
type SchedulingResponse struct {
	SessionID  string          `json:"sessionID,omitempty"`
	Request    *MeetingRequest `json:"request,omitempty"`
	Candidates []Candidate     `json:"candidates,omitempty"`
	Booking    *Booking        `json:"booking,omitempty"`
}
