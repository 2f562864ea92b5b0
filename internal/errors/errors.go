// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFeedNotFound       = errors.New("feed not found or expired")
	ErrFormNotFound       = errors.New("submission form not found or expired")
	ErrInvalidFilter      = errors.New("invalid feed filter")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrAlreadySubmitted   = errors.New("form already submitted, reset it to submit again")
)

// ErrPostNotFound is returned when a like targets an id the feed does not hold
type ErrPostNotFound struct {
	PostID int
}

func (e *ErrPostNotFound) Error() string {
	return fmt.Sprintf("post with ID %d not found", e.PostID)
}

// Helper constructor
func NewPostNotFound(id int) error {
	return &ErrPostNotFound{PostID: id}
}

// ValidationError carries one human-readable message per rejected field,
// keyed by the field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// IsPostNotFound reports whether err (or anything it wraps) is an ErrPostNotFound.
func IsPostNotFound(err error) bool {
	var target *ErrPostNotFound
	return errors.As(err, &target)
}

// AsValidation unwraps a ValidationError if err holds one.
func AsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
