package models

import "time"

// BusyInterval is a half-open [Start, End) time range during which a
// participant is unavailable.
type BusyInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Overlaps reports whether the interval intersects the half-open window
// [windowStart, windowEnd). Touching endpoints do not overlap.
func (b BusyInterval) Overlaps(windowStart, windowEnd time.Time) bool {
	return b.End.After(windowStart) && b.Start.Before(windowEnd)
}

// Clip returns the interval restricted to [windowStart, windowEnd).
// The caller must ensure the interval overlaps the window.
func (b BusyInterval) Clip(windowStart, windowEnd time.Time) BusyInterval {
	clipped := b
	if clipped.Start.Before(windowStart) {
		clipped.Start = windowStart
	}
	if clipped.End.After(windowEnd) {
		clipped.End = windowEnd
	}
	return clipped
}

// Candidate is a prospective meeting start time that passed all conflict
// checks. The end is derived from the request duration and never stored.
type Candidate struct {
	Start time.Time `json:"start"`
}
