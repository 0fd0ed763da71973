package pipeline

import (
	"time"

	"github.com/viant/docflow/progress"
)

// Outcome is the single terminal result of a run.
type Outcome struct {
	RunID    string
	Name     string
	Status   Status
	Stage    State // stage the run ended in
	Message  string
	Cause    error
	Warnings int
	Errors   int
	Elapsed  time.Duration
	Progress []progress.Entry
}

// Terminal returns the terminal state the run reached.
func (o *Outcome) Terminal() State {
	return o.Status.Terminal()
}

// Err returns the failure cause, or nil for a successful run or a graceful
// no-op.
func (o *Outcome) Err() error {
	switch o.Status {
	case StatusSucceeded, StatusNothingToDo:
		return nil
	}
	return o.Cause
}

// OK reports whether the run completed without failure.
func (o *Outcome) OK() bool {
	return o.Err() == nil
}
