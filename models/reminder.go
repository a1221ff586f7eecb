package models

// ReminderPayload is the asynq task payload for a scheduled meeting reminder.
type ReminderPayload struct {
	BookingID    string   `json:"bookingId"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Participants []string `json:"participants"`
	FireDate     string   `json:"fireDate"`
}
