// File: database/repository/bookinglog/memory.go
package bookinglogRepo

import (
	"context"
	"sync"

	"safesched/models"
)

type memoryBookingLogRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingLogRepo constructs an empty in-memory BookingLogRepository.
func NewMemoryBookingLogRepo() BookingLogRepository {
	return &memoryBookingLogRepo{}
}

func (r *memoryBookingLogRepo) Append(_ context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *memoryBookingLogRepo) List(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}
