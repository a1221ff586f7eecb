package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"safesched/models"
	"safesched/services/conference"
	"safesched/utils"
)

// Commit re-validates the chosen slot and converts it into a Booking.
// The re-check and the busy-interval writes run under commitMu: either every
// attendee gets the new busy interval, or none do.
func (se *DefaultSchedulingEngine) Commit(ctx context.Context, req models.MeetingRequest, slotStart time.Time, provider conference.Provider) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.DurationMinutes <= 0 {
		return nil, NewInvalidRequestError(fmt.Sprintf("durationMinutes must be positive, got %d", req.DurationMinutes))
	}
	slotEnd := slotStart.Add(req.Duration())
	attendees := se.attendees(req)

	se.commitMu.Lock()
	defer se.commitMu.Unlock()

	// Same query the candidate scan uses. Time may have passed or another
	// commit may have landed since the slot was offered.
	for _, p := range attendees {
		busy, err := se.Availability.BusyWithin(ctx, p, slotStart, slotEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to re-check availability for %s: %w", p, err)
		}
		if len(busy) > 0 {
			logger.Info("commit rejected, slot no longer free",
				zap.String("participant", p),
				zap.Time("slotStart", slotStart),
			)
			return nil, NewConflictError(fmt.Sprintf("slot %s is no longer free for %s", slotStart.Format(time.RFC3339), p))
		}
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		Title:          req.Title,
		SlotStart:      slotStart,
		SlotEnd:        slotEnd,
		Participants:   attendees,
		ConferenceLink: se.Links.Format(provider),
		CreatedAt:      time.Now(),
	}

	if err := se.Availability.AddBusyBatch(ctx, attendees, slotStart, slotEnd); err != nil {
		return nil, fmt.Errorf("failed to write busy intervals: %w", err)
	}
	if err := se.BookingLog.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to append booking to log: %w", err)
	}

	logger.Info("booking committed",
		zap.String("bookingID", booking.ID),
		zap.String("title", booking.Title),
		zap.Time("slotStart", slotStart),
		zap.Strings("participants", attendees),
	)
	return &booking, nil
}
