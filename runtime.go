package docflow

import (
	"context"

	"github.com/viant/docflow/runtime/pipeline"
)

// Driver returns a pipeline driver for the current configuration.
func (s *Service[U, D, P]) Driver() (*pipeline.Driver[U, D, P], error) {
	name := s.config.Name
	if s.name != "" {
		name = s.name
	}
	if name == "" {
		name = defaultName
	}
	workers := s.config.Workers
	if s.workers != nil {
		workers = *s.workers
	}
	opts := []pipeline.Option{
		pipeline.WithName(name),
		pipeline.WithPolicy(s.config.Policy()),
		pipeline.WithWorkers(workers),
	}
	if s.logger != nil {
		opts = append(opts, pipeline.WithLogger(s.logger))
	}
	if s.reporter != nil {
		opts = append(opts, pipeline.WithReporter(s.reporter))
	}
	if s.listener != nil {
		opts = append(opts, pipeline.WithFanOutListener(s.listener))
	}
	return pipeline.New(s.registry, s.points, s.config.SourceSets, opts...)
}

// Run executes one generation and returns its outcome.  The registry is
// frozen by the first run.
func (s *Service[U, D, P]) Run(ctx context.Context) (*pipeline.Outcome, error) {
	driver, err := s.Driver()
	if err != nil {
		return nil, err
	}
	return driver.Run(ctx), nil
}

// Generate runs one generation and returns its failure cause, if any.  A
// run with nothing to document is not a failure.
func (s *Service[U, D, P]) Generate(ctx context.Context) error {
	outcome, err := s.Run(ctx)
	if err != nil {
		return err
	}
	return outcome.Err()
}
