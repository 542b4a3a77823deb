package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned for unknown or expired wizard sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSubmissionInFlight is returned while a submission for the same
	// session has not finished.
	ErrSubmissionInFlight = errors.New("a submission for this booking is already in progress")
)

// UnknownAddonError rejects add-ons that are not on the fixed list.
type UnknownAddonError struct {
	Name string
}

func (e *UnknownAddonError) Error() string {
	return fmt.Sprintf("unknown add-on %q", e.Name)
}
