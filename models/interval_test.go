package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusyIntervalOverlaps(t *testing.T) {
	hour := func(h int) time.Time {
		return time.Date(2026, 3, 3, h, 0, 0, 0, time.UTC)
	}
	window := BusyInterval{Start: hour(9), End: hour(18)}

	cases := []struct {
		name string
		b    BusyInterval
		want bool
	}{
		{"inside", BusyInterval{hour(10), hour(11)}, true},
		{"spans window", BusyInterval{hour(8), hour(19)}, true},
		{"overlaps start", BusyInterval{hour(8), hour(10)}, true},
		{"overlaps end", BusyInterval{hour(17), hour(19)}, true},
		{"touches start", BusyInterval{hour(8), hour(9)}, false},
		{"touches end", BusyInterval{hour(18), hour(19)}, false},
		{"before", BusyInterval{hour(6), hour(7)}, false},
		{"after", BusyInterval{hour(20), hour(21)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.b.Overlaps(window.Start, window.End))
		})
	}
}

func TestBusyIntervalClip(t *testing.T) {
	hour := func(h int) time.Time {
		return time.Date(2026, 3, 3, h, 0, 0, 0, time.UTC)
	}

	clipped := BusyInterval{Start: hour(8), End: hour(19)}.Clip(hour(9), hour(18))
	assert.Equal(t, hour(9), clipped.Start)
	assert.Equal(t, hour(18), clipped.End)

	// An interval already inside the window is unchanged.
	inner := BusyInterval{Start: hour(10), End: hour(11)}
	assert.Equal(t, inner, inner.Clip(hour(9), hour(18)))
}
