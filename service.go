package docflow

import (
	"github.com/viant/docflow/extension"
	"github.com/viant/docflow/model/types"
	"github.com/viant/docflow/runtime/pipeline"
)

// Service wires a registry, the core extension points and a configuration
// into runnable generations over source sets U, documentables D and page
// trees P.
type Service[U, D, P any] struct {
	config   *Config[U]
	registry *extension.Registry
	points   pipeline.Points[U, D, P]
	*options
}

// New creates a service for cfg; a nil cfg uses DefaultConfig.
func New[U, D, P any](cfg *Config[U], opts ...Option) (*Service[U, D, P], error) {
	if cfg == nil {
		cfg = DefaultConfig[U]()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service[U, D, P]{
		config:   cfg,
		registry: extension.NewRegistry(),
		points:   pipeline.CorePoints[U, D, P](),
		options:  newOptions(opts),
	}, nil
}

// Config returns the service configuration.
func (s *Service[U, D, P]) Config() *Config[U] {
	return s.config
}

// Registry returns the registry, for plugins defining their own points.
func (s *Service[U, D, P]) Registry() *extension.Registry {
	return s.registry
}

// Points returns the core extension points.
func (s *Service[U, D, P]) Points() pipeline.Points[U, D, P] {
	return s.points
}

func (s *Service[U, D, P]) RegisterChecker(checker types.Checker) error {
	return extension.Register(s.registry, s.points.PreGenerationCheck, checker)
}

func (s *Service[U, D, P]) RegisterTranslator(translator types.Translator[U, D]) error {
	return extension.Register(s.registry, s.points.SourceTranslator, translator)
}

func (s *Service[U, D, P]) RegisterPreMergeTransformer(transformer types.Transformer[[]D]) error {
	return extension.Register(s.registry, s.points.PreMergeTransformer, transformer)
}

func (s *Service[U, D, P]) RegisterMerger(merger types.Merger[D]) error {
	return extension.Register(s.registry, s.points.DocumentableMerger, merger)
}

func (s *Service[U, D, P]) RegisterDocumentableTransformer(transformer types.Transformer[D]) error {
	return extension.Register(s.registry, s.points.DocumentableTransformer, transformer)
}

func (s *Service[U, D, P]) RegisterPageCreator(creator types.PageCreator[D, P]) error {
	return extension.Register(s.registry, s.points.PageCreator, creator)
}

func (s *Service[U, D, P]) RegisterPageTransformer(transformer types.Transformer[P]) error {
	return extension.Register(s.registry, s.points.PageTransformer, transformer)
}

func (s *Service[U, D, P]) RegisterRenderer(renderer types.Renderer[P]) error {
	return extension.Register(s.registry, s.points.Renderer, renderer)
}
