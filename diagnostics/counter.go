package diagnostics

import (
	"fmt"
	"sync/atomic"
)

// Counts is a point-in-time copy of the counters.
type Counts struct {
	Warnings int
	Errors   int
}

// Any reports whether at least one warning or error was recorded.
func (c Counts) Any() bool {
	return c.Warnings > 0 || c.Errors > 0
}

// Summary describes the counts the way the end-of-run report prints them.
func (c Counts) Summary() string {
	if !c.Any() {
		return "generation completed successfully"
	}
	return fmt.Sprintf("generation completed with %d warning(s) and %d error(s)", c.Warnings, c.Errors)
}

// Stopped describes the counts of a run that ended at stage without
// rendering, with the status it ended in.
func (c Counts) Stopped(stage, status string) string {
	return fmt.Sprintf("generation stopped at %s (%s) with %d warning(s) and %d error(s)", stage, status, c.Warnings, c.Errors)
}

// Counter keeps run-wide warning and error counts. It is safe for concurrent
// use; the zero value is ready to use.
type Counter struct {
	warnings atomic.Int64
	errors   atomic.Int64
}

// RecordWarning increments the warning count.
func (c *Counter) RecordWarning() {
	c.warnings.Add(1)
}

// RecordError increments the error count.
func (c *Counter) RecordError() {
	c.errors.Add(1)
}

// Counts returns a snapshot of both counters.
func (c *Counter) Counts() Counts {
	if c == nil {
		return Counts{}
	}
	return Counts{
		Warnings: int(c.warnings.Load()),
		Errors:   int(c.errors.Load()),
	}
}

// Reset zeroes the counters; called when a new run starts.
func (c *Counter) Reset() {
	c.warnings.Store(0)
	c.errors.Store(0)
}
