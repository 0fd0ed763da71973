package meta

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Service resolves locations against a base URL and decodes YAML documents.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
	lookup  func(string) string
}

// Option customises a Service.
type Option func(*Service)

// WithLookup replaces the environment lookup used for ${env.KEY} expansion.
func WithLookup(lookup func(string) string) Option {
	return func(s *Service) {
		if lookup != nil {
			s.lookup = lookup
		}
	}
}

// New creates a meta service; options are passed to every afs download
// (for example an embed.FS).
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options, lookup: os.Getenv}
}

// Configure applies service options.
func (s *Service) Configure(opts ...Option) *Service {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL resolves a location relative to the base URL.
func (s *Service) URL(location string) string {
	if s.baseURL == "" || strings.Contains(location, "://") || strings.HasPrefix(location, "/") {
		return location
	}
	return strings.TrimRight(s.baseURL, "/") + "/" + location
}

// Exists reports whether location exists.
func (s *Service) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, s.URL(location), s.options...)
}

// Download returns the content of location with ${env.KEY} expanded.
func (s *Service) Download(ctx context.Context, location string) ([]byte, error) {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	return []byte(expandEnvExpr(string(data), s.lookup)), nil
}

// Load decodes the YAML document at location into target.
func (s *Service) Load(ctx context.Context, location string, target interface{}) error {
	data, err := s.Download(ctx, location)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %v: %w", s.URL(location), err)
	}
	return nil
}
