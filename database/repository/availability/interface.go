// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"time"

	"safesched/models"
)

// AvailabilityRepository owns each participant's set of busy intervals.
// BusyWithin and Participants are pure reads; AddBusy and AddBusyBatch are
// the only mutators, and their effects are visible to immediately subsequent
// reads.
type AvailabilityRepository interface {
	// BusyWithin returns the participant's busy intervals that overlap the
	// half-open window [windowStart, windowEnd), each clipped to that window
	// and ordered by start time.
	BusyWithin(ctx context.Context, participant string, windowStart, windowEnd time.Time) ([]models.BusyInterval, error)

	// AddBusy appends a new busy interval for the participant. Intervals are
	// never merged or coalesced.
	AddBusy(ctx context.Context, participant string, start, end time.Time) error

	// AddBusyBatch appends the same busy interval to every listed participant
	// as a single all-or-none write.
	AddBusyBatch(ctx context.Context, participants []string, start, end time.Time) error

	// Participants returns the identifiers of all known participants.
	Participants(ctx context.Context) ([]string, error)
}
