package scheduling

import (
	"context"
	"sync"
	"time"

	availabilityRepo "safesched/database/repository/availability"
	bookinglogRepo "safesched/database/repository/bookinglog"
	"safesched/models"
	"safesched/services/conference"
)

// SlotConfig carries the search granularity and working-hours policy.
type SlotConfig struct {
	SlotStepMinutes int // cursor advance between candidates
	WorkStartHour   int // slots may not start before this hour
	WorkEndHour     int // slots may not end after this hour
}

// SchedulingEngine computes conflict-free candidate slots and commits a
// chosen slot as a new busy interval for every attendee.
type SchedulingEngine interface {
	// FindCandidates enumerates conflict-free start times within the request
	// window, in chronological order. An empty result is a normal outcome.
	FindCandidates(ctx context.Context, req models.MeetingRequest) ([]models.Candidate, error)

	// Commit re-validates the chosen slot, writes the busy interval for every
	// attendee, appends a Booking to the log and returns it. Fails with a
	// ConflictError when the slot is no longer free.
	Commit(ctx context.Context, req models.MeetingRequest, slotStart time.Time, provider conference.Provider) (*models.Booking, error)
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Availability availabilityRepo.AvailabilityRepository
	BookingLog   bookinglogRepo.BookingLogRepository
	Links        conference.LinkFormatter
	Requester    string // implicit attendee added to every conflict check
	Config       SlotConfig

	// commitMu makes the conflict re-check and the busy-interval append one
	// atomic unit, so two concurrent commits cannot both pass the re-check.
	commitMu sync.Mutex
}
