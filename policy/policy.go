// Package policy provides the fail-on-warning rule evaluated once, after
// rendering.  A nil *Policy accepts every run, which makes it a zero-cost
// default.

package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/docflow/diagnostics"
)

// ErrFailOnWarning is returned when the run is rejected because diagnostics
// were reported while FailOnWarning was set.
var ErrFailOnWarning = errors.New("policy: fail on warning")

// Policy represents the end-of-run settings for the current run.
type Policy struct {
	FailOnWarning bool
}

// ---------------------------------------------------------------------------
// Config <-> Policy converters
// ---------------------------------------------------------------------------

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	FailOnWarning bool `json:"failOnWarning,omitempty" yaml:"failOnWarning,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{FailOnWarning: p.FailOnWarning}
}

// FromConfig converts a Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{FailOnWarning: c.FailOnWarning}
}

// Evaluate rejects the run when FailOnWarning is set and any warning or
// error was recorded.
func (p *Policy) Evaluate(counts diagnostics.Counts) error {
	if p == nil || !p.FailOnWarning || !counts.Any() {
		return nil
	}
	return fmt.Errorf("%w: failed with warningCount=%d and errorCount=%d", ErrFailOnWarning, counts.Warnings, counts.Errors)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy embedded in ctx, or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
