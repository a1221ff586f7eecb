package scheduling

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesched/models"
	"safesched/services/conference"
)

func TestCommitWritesEveryAttendee(t *testing.T) {
	ctx := context.Background()
	engine, availability, bookingLog := newTestEngine()

	req := models.MeetingRequest{
		Participants:    []string{"Priya", "Alex"},
		DurationMinutes: 30,
		WindowStart:     day(9, 0),
		WindowEnd:       day(18, 0),
		Title:           "Design Review",
	}
	booking, err := engine.Commit(ctx, req, day(10, 0), conference.ProviderZoom)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Design Review", booking.Title)
	assert.Equal(t, day(10, 0), booking.SlotStart)
	assert.Equal(t, day(10, 30), booking.SlotEnd)
	assert.Equal(t, []string{"Priya", "Alex", "You"}, booking.Participants)
	assert.NotEmpty(t, booking.ConferenceLink)

	for _, p := range booking.Participants {
		busy, err := availability.BusyWithin(ctx, p, day(10, 0), day(10, 30))
		require.NoError(t, err)
		require.Len(t, busy, 1, "missing busy interval for %s", p)
		assert.Equal(t, day(10, 0), busy[0].Start)
		assert.Equal(t, day(10, 30), busy[0].End)
	}

	log, err := bookingLog.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, booking.ID, log[0].ID)
}

func TestCommitConflictLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	engine, availability, bookingLog := newTestEngine()

	// Priya became busy after the slot was offered.
	require.NoError(t, availability.AddBusy(ctx, "Priya", day(10, 0), day(11, 0)))

	req := models.MeetingRequest{
		Participants:    []string{"Priya"},
		DurationMinutes: 30,
		WindowStart:     day(9, 0),
		WindowEnd:       day(18, 0),
	}
	booking, err := engine.Commit(ctx, req, day(10, 0), conference.ProviderFallback)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Nil(t, booking)

	// No partial writes: the requester's calendar and the log stay empty.
	busy, err := availability.BusyWithin(ctx, "You", day(9, 0), day(18, 0))
	require.NoError(t, err)
	assert.Empty(t, busy)

	log, err := bookingLog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestCommittedSlotLeavesCandidateSearch(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := newTestEngine()

	req := models.MeetingRequest{
		Participants:    []string{"Priya"},
		DurationMinutes: 60,
		WindowStart:     day(9, 0),
		WindowEnd:       day(18, 0),
	}
	before, err := engine.FindCandidates(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	chosen := before[0].Start
	_, err = engine.Commit(ctx, req, chosen, conference.ProviderGoogleMeet)
	require.NoError(t, err)

	after, err := engine.FindCandidates(ctx, req)
	require.NoError(t, err)
	for _, c := range after {
		end := c.Start.Add(req.Duration())
		assert.False(t, c.Start.Before(chosen.Add(req.Duration())) && end.After(chosen),
			"candidate %s overlaps the committed slot", c.Start)
	}
}

func TestConcurrentCommitsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	engine, availability, bookingLog := newTestEngine()

	req := models.MeetingRequest{
		Participants:    []string{"Priya", "Alex"},
		DurationMinutes: 30,
		WindowStart:     day(9, 0),
		WindowEnd:       day(18, 0),
	}
	slot := day(14, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Commit(ctx, req, slot, conference.ProviderZoom)
		}(i)
	}
	wg.Wait()

	committed, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			committed++
		case IsConflict(err):
			conflicted++
		default:
			t.Fatalf("unexpected commit error: %v", err)
		}
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, 1, conflicted)

	// Exactly one busy interval per attendee and one booking in the log.
	for _, p := range []string{"Priya", "Alex", "You"} {
		busy, err := availability.BusyWithin(ctx, p, day(9, 0), day(18, 0))
		require.NoError(t, err)
		assert.Len(t, busy, 1)
	}
	log, err := bookingLog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, log, 1)
}

func TestCommitRejectsNonPositiveDuration(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := newTestEngine()

	req := models.MeetingRequest{
		Participants:    []string{"Priya"},
		DurationMinutes: 0,
		WindowStart:     day(9, 0),
		WindowEnd:       day(18, 0),
	}
	_, err := engine.Commit(ctx, req, day(10, 0), conference.ProviderZoom)
	require.Error(t, err)
	assert.True(t, IsInvalidRequest(err))
}
