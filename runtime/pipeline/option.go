package pipeline

import (
	"github.com/viant/docflow/diagnostics"
	"github.com/viant/docflow/policy"
	"github.com/viant/docflow/progress"
	"github.com/viant/docflow/service/executor"
)

// Option customises a Driver.
type Option func(*settings)

type settings struct {
	name     string
	logger   diagnostics.Logger
	reporter progress.Reporter
	policy   *policy.Policy
	workers  int
	listener executor.Listener
}

// WithName labels the run in spans, progress and outcomes.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger diagnostics.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithReporter adds a progress reporter notified before each stage and for
// every message handlers report through progress.ReportCtx.  Handler
// messages may arrive concurrently during translation.
func WithReporter(reporter progress.Reporter) Option {
	return func(s *settings) {
		s.reporter = reporter
	}
}

// WithPolicy sets the end-of-run policy.
func WithPolicy(p *policy.Policy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithWorkers bounds translate concurrency; n <= 0 means unbounded.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// WithFanOutListener observes each translation task.
func WithFanOutListener(l executor.Listener) Option {
	return func(s *settings) {
		s.listener = l
	}
}
