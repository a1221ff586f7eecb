package models

import "time"

// Booking represents a confirmed meeting booking record.
// Created exactly once per successful commit and immutable thereafter.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                          // Unique booking identifier (UUID)
	Title          string    `bson:"title" json:"title"`                    // Meeting title
	SlotStart      time.Time `bson:"slot_start" json:"slotStart"`           // Committed slot start
	SlotEnd        time.Time `bson:"slot_end" json:"slotEnd"`               // Committed slot end
	Participants   []string  `bson:"participants" json:"participants"`      // All attendees, including the requester
	ConferenceLink string    `bson:"conference_link" json:"conferenceLink"` // Opaque URL from the link formatter
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`           // Timestamp when the booking was committed
}
