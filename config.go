package docflow

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/docflow/policy"
	"github.com/viant/docflow/service/meta"
)

// Config is a serialisable representation of a generation run over source
// sets of type U.  It can be populated from YAML or JSON.
type Config[U any] struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	SourceSets    []U    `json:"sourceSets" yaml:"sourceSets"`
	FailOnWarning bool   `json:"failOnWarning,omitempty" yaml:"failOnWarning,omitempty"`
	// Workers bounds concurrent source set translation; 0 means unbounded.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig[U any]() *Config[U] {
	return &Config[U]{Name: defaultName}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config[U]) Validate() error {
	if c == nil {
		return nil
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Policy returns the end-of-run policy described by the config.
func (c *Config[U]) Policy() *policy.Policy {
	if c == nil {
		return nil
	}
	return policy.FromConfig(&policy.Config{FailOnWarning: c.FailOnWarning})
}

// LoadConfig loads a YAML config from URL.  WithMetaBaseURL and
// WithMetaFsOptions control how the location is resolved and read; other
// options are ignored.
func LoadConfig[U any](ctx context.Context, URL string, opts ...Option) (*Config[U], error) {
	o := newOptions(opts)
	metaService := meta.New(afs.New(), o.metaBaseURL, o.metaFsOptions...)
	ret := DefaultConfig[U]()
	if err := metaService.Load(ctx, URL, ret); err != nil {
		return nil, err
	}
	if ret.Name == "" {
		ret.Name = defaultName
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
