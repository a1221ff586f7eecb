package models

import "time"

// MeetingRequest is the structured form of a free-text scheduling request.
type MeetingRequest struct {
	Participants    []string  `bson:"participants" json:"participants"`        // Ordered, unique, non-empty after defaulting
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"` // Positive, defaults to 30
	WindowStart     time.Time `bson:"window_start" json:"windowStart"`         // Search window start (inclusive)
	WindowEnd       time.Time `bson:"window_end" json:"windowEnd"`             // Search window end (exclusive)
	Title           string    `bson:"title" json:"title"`                      // Defaults to "Meeting"
}

// Duration returns the requested meeting length.
func (r MeetingRequest) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}
