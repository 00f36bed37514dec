package router

import (
	"errors"
	"fmt"
)

// ErrNotRequested indicates an adapter asked for a destination the router
// never presented, or one that has since been dismissed.
var ErrNotRequested = errors.New("navigating to a destination that was not requested")

// DesyncError reports that the rendering adapter and the router disagree
// about what is presented. It is a programming error; Resolve panics with it.
type DesyncError struct {
	Op          string      // Operation that failed (e.g., "resolve")
	Destination Destination // Destination the adapter asked about
	Err         error       // Underlying error
}

func (e *DesyncError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: %s %s: %v", e.Op, e.Destination, e.Err)
	}
	return fmt.Sprintf("router: %s %s", e.Op, e.Destination)
}

func (e *DesyncError) Unwrap() error {
	return e.Err
}

// NewDesyncError creates a new desync error.
func NewDesyncError(op string, d Destination, err error) *DesyncError {
	return &DesyncError{Op: op, Destination: d, Err: err}
}

// IsDesync checks if an error is a desync error.
func IsDesync(err error) bool {
	var desync *DesyncError
	return errors.As(err, &desync)
}
