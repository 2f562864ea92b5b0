package appErrors

import (
	"fmt"
	"testing"
)

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := NewValidationError(map[string]string{"name": "too short", "email": "bad"})
	want := "validation failed: email: bad; name: too short"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestAsValidationUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewValidationError(map[string]string{"email": "bad"}))

	v, ok := AsValidation(wrapped)
	if !ok || v.Fields["email"] != "bad" {
		t.Errorf("expected wrapped validation error, got %v", wrapped)
	}
	if _, ok := AsValidation(ErrFeedNotFound); ok {
		t.Error("sentinel must not look like a validation error")
	}
}

func TestIsPostNotFound(t *testing.T) {
	if !IsPostNotFound(fmt.Errorf("like: %w", NewPostNotFound(9))) {
		t.Error("expected wrapped post-not-found to match")
	}
	if IsPostNotFound(ErrFeedNotFound) {
		t.Error("unexpected match")
	}
}
