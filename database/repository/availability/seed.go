// File: database/repository/availability/seed.go
package availabilityRepo

import (
	"context"
	"time"
)

// demoBusy describes one seeded busy block as offsets from "now".
type demoBusy struct {
	startOffset time.Duration
	duration    time.Duration
}

// demoCalendars mirrors the demo participants used throughout the docs.
var demoCalendars = map[string][]demoBusy{
	"You":   {{2 * time.Hour, time.Hour}, {26 * time.Hour, 2 * time.Hour}},
	"Priya": {{3 * time.Hour, 90 * time.Minute}, {20 * time.Hour, time.Hour}},
	"Alex":  {{5 * time.Hour, 2 * time.Hour}, {28 * time.Hour, time.Hour}},
}

// SeedDemoCalendars populates the repository with simulated calendars so the
// service is explorable without a real calendar provider.
func SeedDemoCalendars(ctx context.Context, repo AvailabilityRepository, now time.Time) error {
	for participant, blocks := range demoCalendars {
		for _, b := range blocks {
			start := now.Add(b.startOffset)
			if err := repo.AddBusy(ctx, participant, start, start.Add(b.duration)); err != nil {
				return err
			}
		}
	}
	return nil
}
