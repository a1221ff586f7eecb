// File: database/repository/bookinglog/interface.go
package bookinglogRepo

import (
	"context"

	"safesched/models"
)

// BookingLogRepository is the append-only log of committed bookings.
// Entries are never mutated or deleted; cancellation is out of scope.
type BookingLogRepository interface {
	Append(ctx context.Context, booking models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
}
