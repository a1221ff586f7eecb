package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"safesched/models"
)

// DefaultDurationMinutes is used when no duration phrase is found.
const DefaultDurationMinutes = 30

// DefaultTitle is used when no subject phrase is found.
const DefaultTitle = "Meeting"

// windowStartHour anchors all derived windows to the start of the business day.
const windowStartHour = 9

var (
	participantsRe = regexp.MustCompile(`with ([a-z,\s]+)`)
	nameSplitRe    = regexp.MustCompile(`\s*(?:,|\band\b)\s*`)
	minutesRe      = regexp.MustCompile(`(\d+)\s*(?:min|mins|minutes)`)
	hoursRe        = regexp.MustCompile(`(\d+)\s*(?:hr|hour|hours)`)
	titleRe        = regexp.MustCompile(`(?:for|about|to) ([a-z\s]+)`)
)

// clauseStopWords end the participant clause; anything from the first stop
// word onward belongs to a date or subject phrase, not a name.
var clauseStopWords = map[string]bool{
	"tomorrow": true,
	"today":    true,
	"next":     true,
	"this":     true,
	"on":       true,
	"at":       true,
	"in":       true,
	"by":       true,
	"for":      true,
	"about":    true,
}

// DefaultRequestParser extracts meeting requests with an ordered list of
// independent keyword rules. Each rule is optional; the first match per field
// wins, and rules never interact, which keeps parsing deterministic.
type DefaultRequestParser struct {
	fallbackParticipants []string
	fuzzy                *when.Parser
}

// NewDefaultRequestParser constructs a parser with the given fallback
// participant list (used when no "with ..." clause is present).
func NewDefaultRequestParser(fallbackParticipants []string) *DefaultRequestParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DefaultRequestParser{
		fallbackParticipants: fallbackParticipants,
		fuzzy:                w,
	}
}

// Parse extracts participants, duration, search window and title from text.
// referenceNow supplies "now" in the configured timezone.
func (p *DefaultRequestParser) Parse(text string, referenceNow time.Time) models.MeetingRequest {
	lower := strings.ToLower(text)
	windowStart, windowEnd := p.parseWindow(text, lower, referenceNow)

	return models.MeetingRequest{
		Participants:    p.parseParticipants(lower),
		DurationMinutes: parseDuration(lower),
		Title:           parseTitle(lower),
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
	}
}

func (p *DefaultRequestParser) parseParticipants(lower string) []string {
	m := participantsRe.FindStringSubmatch(lower)
	if m == nil {
		return append([]string(nil), p.fallbackParticipants...)
	}

	caser := cases.Title(language.English)
	seen := make(map[string]bool)
	var participants []string
	for _, tok := range nameSplitRe.Split(m[1], -1) {
		tok = trimAtStopWord(tok)
		if tok == "" {
			continue
		}
		name := caser.String(tok)
		if seen[name] {
			continue
		}
		seen[name] = true
		participants = append(participants, name)
	}
	if len(participants) == 0 {
		return append([]string(nil), p.fallbackParticipants...)
	}
	return participants
}

func trimAtStopWord(tok string) string {
	words := strings.Fields(tok)
	for i, w := range words {
		if clauseStopWords[w] {
			words = words[:i]
			break
		}
	}
	return strings.Join(words, " ")
}

func parseDuration(lower string) int {
	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 60
		}
	}
	return DefaultDurationMinutes
}

func parseTitle(lower string) string {
	m := titleRe.FindStringSubmatch(lower)
	if m == nil {
		return DefaultTitle
	}
	subject := strings.TrimSpace(m[1])
	if subject == "" {
		return DefaultTitle
	}
	return cases.Title(language.English).String(subject)
}

// parseWindow resolves the search window. Keyword rules ("tomorrow",
// "next week") win over fuzzy date extraction; if nothing matches, the window
// is the next seven days.
func (p *DefaultRequestParser) parseWindow(text, lower string, now time.Time) (time.Time, time.Time) {
	switch {
	case strings.Contains(lower, "tomorrow"):
		from := atHour(now.AddDate(0, 0, 1), windowStartHour)
		return from, from.AddDate(0, 0, 1)

	case strings.Contains(lower, "next week"):
		// Monday of the following week; weekday counts Monday as 0.
		daysAhead := 7 - mondayWeekday(now)
		from := atHour(now.AddDate(0, 0, daysAhead), windowStartHour)
		return from, from.AddDate(0, 0, 7)
	}

	if r, err := p.fuzzy.Parse(text, now); err == nil && r != nil {
		from := atHour(r.Time, windowStartHour)
		return from, from.AddDate(0, 0, 1)
	}
	return now, now.AddDate(0, 0, 7)
}

// atHour truncates t to hour:00:00 on the same calendar day.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// mondayWeekday maps time.Weekday (Sunday=0) onto a Monday=0 numbering.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
