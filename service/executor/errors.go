package executor

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHandler is returned when a nil handler reaches the executor.
	ErrNilHandler = errors.New("executor: nil handler")
)

// HandlerError identifies the handler (fold position or fan-out partition)
// that failed.
type HandlerError struct {
	Index int
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler #%d: %v", e.Index, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
