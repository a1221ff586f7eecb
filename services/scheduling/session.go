package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"safesched/models"
	"safesched/services/conference"
	"safesched/services/parser"
	"safesched/utils"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("scheduling session not found or expired")

// ReminderScheduler schedules a post-commit meeting reminder.
type ReminderScheduler interface {
	ScheduleMeetingReminder(booking models.Booking) error
}

// SessionService manages a stateful scheduling session: parse the request,
// offer candidates, record the user's slot selection, and confirm the
// booking. Sessions live in the cache between search and confirmation.
type SessionService interface {
	InitiateSession(ctx context.Context, text string) (*models.SchedulingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
	SelectSlot(ctx context.Context, sessionID string, slotStart time.Time) (*models.SchedulingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string, provider conference.Provider) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService on top of the scheduling
// engine and a Redis session cache.
type DefaultSessionService struct {
	Parser      parser.RequestParser
	Engine      SchedulingEngine
	CacheClient *redis.Client
	Location    *time.Location
	Reminders   ReminderScheduler // optional; nil disables reminders
}

func (s *DefaultSessionService) InitiateSession(ctx context.Context, text string) (*models.SchedulingSession, error) {
	now := time.Now().In(s.Location)
	req := s.Parser.Parse(text, now)

	candidates, err := s.Engine.FindCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	session := &models.SchedulingSession{
		SessionID:  uuid.New().String(),
		Request:    req,
		Candidates: candidates,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	data, err := s.CacheClient.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduling session: %w", err)
	}

	var session models.SchedulingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse scheduling session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) SelectSlot(ctx context.Context, sessionID string, slotStart time.Time) (*models.SchedulingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	offered := false
	for _, c := range session.Candidates {
		if c.Start.Equal(slotStart) {
			offered = true
			break
		}
	}
	if !offered {
		return nil, NewInvalidRequestError(fmt.Sprintf("slot %s was not offered for this session", slotStart.Format(time.RFC3339)))
	}

	session.SelectedSlot = &slotStart
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string, provider conference.Provider) (*models.Booking, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedSlot == nil {
		return nil, NewInvalidRequestError("no slot selected for this session")
	}

	booking, err := s.Engine.Commit(ctx, session.Request, *session.SelectedSlot, provider)
	if err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleMeetingReminder(*booking); err != nil {
			// The booking stands; the reminder is best effort.
			utils.GetLogger().Warn("failed to schedule meeting reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	if err := s.CacheClient.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Warn("failed to delete scheduling session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.CacheClient.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}

func (s *DefaultSessionService) saveSession(ctx context.Context, session *models.SchedulingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduling session: %w", err)
	}
	key := utils.SessionCachePrefix + session.SessionID
	if err := s.CacheClient.Set(ctx, key, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache scheduling session: %w", err)
	}
	return nil
}
