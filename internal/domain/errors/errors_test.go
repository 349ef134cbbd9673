package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsWrap(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"unknown entity", ErrUnknownEntity},
		{"malformed file", ErrMalformedFile},
		{"invalid order", ErrInvalidOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", wrapped)
			}
		})
	}
}
