// File: database/repository/availability/memory.go
package availabilityRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"safesched/models"
)

// memoryAvailabilityRepo keeps calendars in process memory. It is the
// default backend: the store only needs to live as long as the process.
type memoryAvailabilityRepo struct {
	mu        sync.RWMutex
	calendars map[string][]models.BusyInterval
}

// NewMemoryAvailabilityRepo constructs an empty in-memory AvailabilityRepository.
func NewMemoryAvailabilityRepo() AvailabilityRepository {
	return &memoryAvailabilityRepo{
		calendars: make(map[string][]models.BusyInterval),
	}
}

func (r *memoryAvailabilityRepo) BusyWithin(_ context.Context, participant string, windowStart, windowEnd time.Time) ([]models.BusyInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var intervals []models.BusyInterval
	for _, b := range r.calendars[participant] {
		if !b.Overlaps(windowStart, windowEnd) {
			continue
		}
		intervals = append(intervals, b.Clip(windowStart, windowEnd))
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	return intervals, nil
}

func (r *memoryAvailabilityRepo) AddBusy(_ context.Context, participant string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calendars[participant] = append(r.calendars[participant], models.BusyInterval{Start: start, End: end})
	return nil
}

func (r *memoryAvailabilityRepo) AddBusyBatch(_ context.Context, participants []string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	interval := models.BusyInterval{Start: start, End: end}
	for _, p := range participants {
		r.calendars[p] = append(r.calendars[p], interval)
	}
	return nil
}

func (r *memoryAvailabilityRepo) Participants(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.calendars))
	for p := range r.calendars {
		names = append(names, p)
	}
	sort.Strings(names)
	return names, nil
}
