package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrValidityCheck is returned when a pre-generation checker rejects the run.
	ErrValidityCheck = errors.New("pre-generation validity check failed")

	// ErrNilRegistry is returned when a driver is created without a registry.
	ErrNilRegistry = errors.New("pipeline: registry is required")
)

// NothingToDocument is the message of the graceful no-op outcome.
const NothingToDocument = "nothing to document"

// StageError names the stage whose handler failed.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
