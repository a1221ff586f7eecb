package parser

import (
	"time"

	"safesched/models"
)

// RequestParser turns a free-text scheduling request into a structured
// MeetingRequest. Parsing never fails: every ambiguous or missing field falls
// back to a documented default, since this is a best-effort extractor rather
// than a validator.
type RequestParser interface {
	Parse(text string, referenceNow time.Time) models.MeetingRequest
}
