package scheduling

import (
	"errors"
	"fmt"
)

// ConflictError is returned when a chosen slot is no longer conflict-free at
// commit time. The caller must re-run the candidate search and re-prompt.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "slotConflict",
		Message: msg,
	}
}

// InvalidRequestError is returned when a malformed request reaches the
// engine directly, bypassing the parser's defaults.
type InvalidRequestError struct {
	Code    string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRequestError(msg string) error {
	return &InvalidRequestError{
		Code:    "invalidRequest",
		Message: msg,
	}
}

// IsConflict reports whether err is a commit-time slot conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsInvalidRequest reports whether err is a request validation failure.
func IsInvalidRequest(err error) bool {
	var ie *InvalidRequestError
	return errors.As(err, &ie)
}
