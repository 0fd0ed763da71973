// Package progress provides a lightweight tracker that keeps the ordered
// stage messages of a single run together with the time elapsed since the
// run started.  The tracker lives in the run context so that every component
// receiving the context can append to it.

package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/docflow/internal/clock"
)

// Reporter accepts free-text progress messages, one or more per stage.
type Reporter interface {
	Report(stage, message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(stage, message string)

func (f ReporterFunc) Report(stage, message string) { f(stage, message) }

// Entry is a single progress message.
type Entry struct {
	Stage   string
	Message string
	At      time.Time
	Elapsed time.Duration
}

// Progress keeps the messages of one run.  It is safe for concurrent use.
type Progress struct {
	RunID     string
	Name      string
	StartedAt time.Time

	entries []Entry

	sync.Mutex
	onChange func(Entry)
}

// Report appends a message.  The onChange callback, if any, is invoked
// outside the critical section.
func (p *Progress) Report(stage, message string) {
	if p == nil {
		return
	}
	now := clock.Now()
	p.Lock()
	anEntry := Entry{Stage: stage, Message: message, At: now, Elapsed: now.Sub(p.StartedAt)}
	p.entries = append(p.entries, anEntry)
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(anEntry)
	}
}

// Entries returns a copy of the recorded messages.
func (p *Progress) Entries() []Entry {
	if p == nil {
		return nil
	}
	p.Lock()
	defer p.Unlock()
	return append([]Entry(nil), p.entries...)
}

// New creates a tracker started now.
func New(runID, name string, onChange func(Entry)) *Progress {
	return &Progress{
		RunID:     runID,
		Name:      name,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, runID, name string, onChange func(Entry)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := New(runID, name, onChange)
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// ReportCtx reports through the tracker carried by ctx, if any.
func ReportCtx(ctx context.Context, stage, message string) {
	if tr, ok := FromContext(ctx); ok {
		tr.Report(stage, message)
	}
}
