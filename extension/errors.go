package extension

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHandler is returned when a single-handler point has no handler.
	ErrMissingHandler = errors.New("extension: missing handler")

	// ErrAmbiguousHandler is returned when a single-handler point has more
	// than one handler.
	ErrAmbiguousHandler = errors.New("extension: ambiguous handler")

	// ErrFrozen is returned when registering into a frozen registry.
	ErrFrozen = errors.New("extension: registry is frozen")

	// ErrShapeMismatch is returned when a point name is reused with a
	// different handler type.
	ErrShapeMismatch = errors.New("extension: handler shape mismatch")

	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("extension: nil handler")
)

// ResolutionError describes a point that could not be resolved to exactly
// one handler.
type ResolutionError struct {
	Point string
	Count int
	Err   error
}

func (e *ResolutionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingHandler):
		return fmt.Sprintf("extension point %q: no handler registered, expected exactly one", e.Point)
	case errors.Is(e.Err, ErrShapeMismatch):
		return fmt.Sprintf("extension point %q: %v", e.Point, e.Err)
	}
	return fmt.Sprintf("extension point %q: %d handlers registered, expected exactly one", e.Point, e.Count)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
