package tasks

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"safesched/config"
	"safesched/models"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how long before the meeting the reminder fires.
const ReminderLeadTime = 15 * time.Minute

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues meeting reminders on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds a scheduler backed by the configured Redis queue.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleMeetingReminder enqueues a reminder shortly before the booked slot.
func (s *ReminderScheduler) ScheduleMeetingReminder(booking models.Booking) error {
	fireAt := booking.SlotStart.Add(-ReminderLeadTime)
	payload := models.ReminderPayload{
		BookingID:    booking.ID,
		Title:        booking.Title,
		Body:         fmt.Sprintf("%s starts at %s. Join: %s", booking.Title, booking.SlotStart.Format("Mon, Jan 2 3:04 PM"), booking.ConferenceLink),
		Participants: booking.Participants,
		FireDate:     fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", strings.Join(booking.Participants, ", "), err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
