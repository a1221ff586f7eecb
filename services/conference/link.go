package conference

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Provider selects which conferencing backend a link is formatted for.
type Provider string

const (
	ProviderZoom       Provider = "zoom"
	ProviderGoogleMeet Provider = "google_meet"
	ProviderFallback   Provider = "none"
)

// LinkFormatter produces an opaque conferencing URL for a booking. The
// scheduling core treats the output as a black box and never parses it.
type LinkFormatter interface {
	Format(provider Provider) string
}

// DefaultLinkFormatter generates realistic-looking placeholder links until a
// real conferencing provider is wired in.
type DefaultLinkFormatter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDefaultLinkFormatter constructs a formatter. The random source is
// injectable so tests can supply a fixed seed.
func NewDefaultLinkFormatter(src rand.Source) *DefaultLinkFormatter {
	return &DefaultLinkFormatter{rng: rand.New(src)}
}

// Format returns a fresh meeting URL for the given provider.
func (f *DefaultLinkFormatter) Format(provider Provider) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]

	switch provider {
	case ProviderZoom:
		f.mu.Lock()
		meetingID := 1000000000 + f.rng.Int63n(9000000000)
		f.mu.Unlock()
		return fmt.Sprintf("https://zoom.us/j/%d?pwd=%s", meetingID, token)
	case ProviderGoogleMeet:
		return fmt.Sprintf("https://meet.google.com/%s-%s-%s", token[:3], token[3:6], token[6:9])
	default:
		return fmt.Sprintf("https://calls.safesched.example/%s", token)
	}
}
