package conference

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	zoomRe     = regexp.MustCompile(`^https://zoom\.us/j/\d{10}\?pwd=[0-9a-f]{10}$`)
	meetRe     = regexp.MustCompile(`^https://meet\.google\.com/[0-9a-f]{3}-[0-9a-f]{3}-[0-9a-f]{3}$`)
	fallbackRe = regexp.MustCompile(`^https://calls\.safesched\.example/[0-9a-f]{10}$`)
)

func TestFormatLinkShapes(t *testing.T) {
	f := NewDefaultLinkFormatter(rand.NewSource(1))

	assert.Regexp(t, zoomRe, f.Format(ProviderZoom))
	assert.Regexp(t, meetRe, f.Format(ProviderGoogleMeet))
	assert.Regexp(t, fallbackRe, f.Format(ProviderFallback))
	// Unknown providers get the fallback shape.
	assert.Regexp(t, fallbackRe, f.Format(Provider("webex")))
}

func TestFormatZoomMeetingIDDeterministicPerSeed(t *testing.T) {
	idRe := regexp.MustCompile(`/j/(\d{10})\?`)

	a := NewDefaultLinkFormatter(rand.NewSource(42))
	b := NewDefaultLinkFormatter(rand.NewSource(42))

	idA := idRe.FindStringSubmatch(a.Format(ProviderZoom))
	idB := idRe.FindStringSubmatch(b.Format(ProviderZoom))
	assert.NotNil(t, idA)
	assert.NotNil(t, idB)
	assert.Equal(t, idA[1], idB[1])
}

func TestFormatLinksAreFresh(t *testing.T) {
	f := NewDefaultLinkFormatter(rand.NewSource(7))

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		link := f.Format(ProviderGoogleMeet)
		assert.False(t, seen[link], "duplicate link %s", link)
		seen[link] = true
	}
}
