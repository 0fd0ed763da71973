package docflow

import (
	"github.com/viant/afs/storage"
	"github.com/viant/docflow/diagnostics"
	"github.com/viant/docflow/progress"
	"github.com/viant/docflow/service/executor"
	"github.com/viant/docflow/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const defaultName = "docflow"

// Option customises a Service.
type Option func(o *options)

type options struct {
	name          string
	logger        diagnostics.Logger
	reporter      progress.Reporter
	workers       *int
	listener      executor.Listener
	metaBaseURL   string
	metaFsOptions []storage.Option
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithLogger sets the diagnostics logger; it defaults to a stderr logger.
func WithLogger(logger diagnostics.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReporter adds a progress reporter notified before each stage.
func WithReporter(reporter progress.Reporter) Option {
	return func(o *options) {
		o.reporter = reporter
	}
}

// WithWorkers overrides Config.Workers.
func WithWorkers(count int) Option {
	return func(o *options) {
		o.workers = &count
	}
}

// WithFanOutListener observes each source set translation.
func WithFanOutListener(listener executor.Listener) Option {
	return func(o *options) {
		o.listener = listener
	}
}

// WithName overrides Config.Name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMetaBaseURL sets the base URL relative config locations resolve against.
func WithMetaBaseURL(url string) Option {
	return func(o *options) {
		o.metaBaseURL = url
	}
}

// WithMetaFsOptions with meta file system options
func WithMetaFsOptions(fsOptions ...storage.Option) Option {
	return func(o *options) {
		o.metaFsOptions = fsOptions
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file
// path. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(o *options) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, for example OTLP, Jaeger or Zipkin.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(o *options) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
