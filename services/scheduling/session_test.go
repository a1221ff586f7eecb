package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesched/models"
	"safesched/services/conference"
	"safesched/services/parser"
)

type fakeReminderScheduler struct {
	scheduled []models.Booking
}

func (f *fakeReminderScheduler) ScheduleMeetingReminder(booking models.Booking) error {
	f.scheduled = append(f.scheduled, booking)
	return nil
}

func newTestSessionService(t *testing.T) (*DefaultSessionService, *fakeReminderScheduler) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	engine, _, _ := newTestEngine()
	reminders := &fakeReminderScheduler{}
	svc := &DefaultSessionService{
		Parser:      parser.NewDefaultRequestParser([]string{"Priya", "Alex"}),
		Engine:      engine,
		CacheClient: client,
		Location:    time.UTC,
		Reminders:   reminders,
	}
	return svc, reminders
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, reminders := newTestSessionService(t)

	session, err := svc.InitiateSession(ctx, "Schedule a 30 min sync with Dana tomorrow")
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)
	assert.Equal(t, []string{"Dana"}, session.Request.Participants)
	require.NotEmpty(t, session.Candidates)
	assert.Nil(t, session.SelectedSlot)

	fetched, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, fetched.SessionID)
	assert.Len(t, fetched.Candidates, len(session.Candidates))

	chosen := session.Candidates[0].Start
	updated, err := svc.SelectSlot(ctx, session.SessionID, chosen)
	require.NoError(t, err)
	require.NotNil(t, updated.SelectedSlot)
	assert.True(t, updated.SelectedSlot.Equal(chosen))

	booking, err := svc.ConfirmBooking(ctx, session.SessionID, conference.ProviderGoogleMeet)
	require.NoError(t, err)
	assert.True(t, booking.SlotStart.Equal(chosen))
	assert.Contains(t, booking.Participants, "Dana")
	assert.Contains(t, booking.Participants, "You")
	assert.NotEmpty(t, booking.ConferenceLink)

	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, booking.ID, reminders.scheduled[0].ID)

	// The session is single use and gone after confirmation.
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectSlotRejectsUnofferedStart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSessionService(t)

	session, err := svc.InitiateSession(ctx, "Schedule a quick sync with Dana tomorrow")
	require.NoError(t, err)
	require.NotEmpty(t, session.Candidates)

	_, err = svc.SelectSlot(ctx, session.SessionID, session.Candidates[0].Start.Add(7*time.Minute))
	require.Error(t, err)
	assert.True(t, IsInvalidRequest(err))
}

func TestConfirmBookingRequiresSelectedSlot(t *testing.T) {
	ctx := context.Background()
	svc, reminders := newTestSessionService(t)

	session, err := svc.InitiateSession(ctx, "Plan a retro with Dana tomorrow")
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, session.SessionID, conference.ProviderZoom)
	require.Error(t, err)
	assert.True(t, IsInvalidRequest(err))
	assert.Empty(t, reminders.scheduled)
}

func TestSessionOperationsOnUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSessionService(t)

	_, err := svc.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SelectSlot(ctx, "nope", time.Now())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ConfirmBooking(ctx, "nope", conference.ProviderZoom)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSessionRemovesState(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSessionService(t)

	session, err := svc.InitiateSession(ctx, "Schedule a sync with Dana tomorrow")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, session.SessionID))
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
