package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/docflow/diagnostics"
	"github.com/viant/docflow/extension"
	"github.com/viant/docflow/internal/clock"
	"github.com/viant/docflow/internal/idgen"
	"github.com/viant/docflow/model/types"
	"github.com/viant/docflow/policy"
	"github.com/viant/docflow/progress"
	"github.com/viant/docflow/service/executor"
	"github.com/viant/docflow/tracing"
)

// Driver runs the stage sequence over source sets U, documentables D and
// page trees P.
type Driver[U, D, P any] struct {
	registry   *extension.Registry
	points     Points[U, D, P]
	sourceSets []U
	settings
}

// New creates a driver.  The registry is frozen when Run starts.
func New[U, D, P any](registry *extension.Registry, points Points[U, D, P], sourceSets []U, opts ...Option) (*Driver[U, D, P], error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	ret := &Driver[U, D, P]{
		registry:   registry,
		points:     points,
		sourceSets: sourceSets,
		settings:   settings{name: "docflow"},
	}
	for _, opt := range opts {
		opt(&ret.settings)
	}
	if ret.logger == nil {
		ret.logger = diagnostics.New(nil)
	}
	return ret, nil
}

// run carries the per-run collaborators shared by every stage.
type run struct {
	logger   diagnostics.Logger
	reporter progress.Reporter
	outcome  *Outcome
	reported bool
}

// Run executes the pipeline and returns its terminal outcome.
func (d *Driver[U, D, P]) Run(ctx context.Context) (outcome *Outcome) {
	runID := idgen.New()
	started := clock.Now()
	d.registry.Freeze()
	d.logger.Reset()

	ctx, tracker := progress.WithNewTracker(ctx, runID, d.name, d.forward)
	r := &run{
		logger:   d.logger,
		reporter: tracker,
		outcome:  &Outcome{RunID: runID, Name: d.name, Stage: StateInit},
	}

	ctx = diagnostics.WithLogger(ctx, d.logger)
	ctx = policy.WithPolicy(ctx, d.policy)
	ctx = types.EnsureExecutionContext(ctx, types.RunIDKey, runID, types.NameKey, d.name)
	ctx, span := tracing.StartSpan(ctx, "docflow.run "+d.name, tracing.KindInternal)
	span.WithAttributes(map[string]string{"docflow.run_id": runID, "docflow.name": d.name})

	defer func() {
		counts := d.logger.Counts()
		outcome.Warnings = counts.Warnings
		outcome.Errors = counts.Errors
		outcome.Elapsed = clock.Since(started)
		outcome.Progress = tracker.Entries()
		span.WithAttributes(map[string]string{"docflow.status": string(outcome.Status)})
		tracing.EndSpan(span, outcome.Err())
	}()

	validity := execute(ctx, r, StateValidityCheck, d.validityCheck)
	if !validity.IsSuccess() {
		return r.finish(validity.Status(), validity.Message(), validity.Err())
	}

	modules := execute(ctx, r, StateTranslate, d.translate)
	if !modules.IsSuccess() {
		return r.finish(modules.Status(), modules.Message(), modules.Err())
	}

	preMerged := Then(modules, func(modules []D) Result[[]D] {
		return execute(ctx, r, StatePreMergeTransform, func(ctx context.Context) Result[[]D] {
			handlers, err := extension.Resolve(d.registry, d.points.PreMergeTransformer)
			if err != nil {
				return Fatal[[]D](StatusHandlerFailed, err)
			}
			transformed, err := executor.Fold(ctx, handlers, modules)
			return From(transformed, err)
		})
	})
	merged := Then(preMerged, func(modules []D) Result[D] {
		return execute(ctx, r, StateMerge, func(ctx context.Context) Result[D] {
			merger, err := extension.One(d.registry, d.points.DocumentableMerger)
			if err != nil {
				return Fatal[D](StatusHandlerFailed, err)
			}
			module, err := merger.Merge(ctx, modules)
			return From(module, err)
		})
	})
	transformed := Then(merged, func(module D) Result[D] {
		return execute(ctx, r, StatePostMergeTransform, func(ctx context.Context) Result[D] {
			handlers, err := extension.Resolve(d.registry, d.points.DocumentableTransformer)
			if err != nil {
				return Fatal[D](StatusHandlerFailed, err)
			}
			transformed, err := executor.Fold(ctx, handlers, module)
			return From(transformed, err)
		})
	})
	pages := Then(transformed, func(module D) Result[P] {
		return execute(ctx, r, StateCreatePages, func(ctx context.Context) Result[P] {
			creator, err := extension.One(d.registry, d.points.PageCreator)
			if err != nil {
				return Fatal[P](StatusHandlerFailed, err)
			}
			root, err := creator.CreatePages(ctx, module)
			return From(root, err)
		})
	})
	transformedPages := Then(pages, func(root P) Result[P] {
		return execute(ctx, r, StateTransformPages, func(ctx context.Context) Result[P] {
			handlers, err := extension.Resolve(d.registry, d.points.PageTransformer)
			if err != nil {
				return Fatal[P](StatusHandlerFailed, err)
			}
			transformed, err := executor.Fold(ctx, handlers, root)
			return From(transformed, err)
		})
	})
	done := Then(transformedPages, func(root P) Result[struct{}] {
		return execute(ctx, r, StateRender, func(ctx context.Context) Result[struct{}] {
			renderer, err := extension.One(d.registry, d.points.Renderer)
			if err != nil {
				return Fatal[struct{}](StatusHandlerFailed, err)
			}
			return From(struct{}{}, renderer.Render(ctx, root))
		})
	})
	if !done.IsSuccess() {
		return r.finish(done.Status(), done.Message(), done.Err())
	}

	reported := execute(ctx, r, StateReport, func(ctx context.Context) Result[struct{}] {
		d.report(ctx, r)
		if err := policy.FromContext(ctx).Evaluate(r.logger.Counts()); err != nil {
			return Fatal[struct{}](StatusPolicyFailed, err)
		}
		return Success(struct{}{})
	})
	if !reported.IsSuccess() {
		return r.finish(reported.Status(), reported.Message(), reported.Err())
	}
	return r.finish(StatusSucceeded, "", nil)
}

func (d *Driver[U, D, P]) validityCheck(ctx context.Context) Result[struct{}] {
	checkers, err := extension.Resolve(d.registry, d.points.PreGenerationCheck)
	if err != nil {
		return Fatal[struct{}](StatusHandlerFailed, err)
	}
	validity := executor.Check(ctx, checkers)
	if !validity.OK {
		return Fatal[struct{}](StatusValidityFailed, fmt.Errorf("%w: %s", ErrValidityCheck, strings.Join(validity.Messages, ",")))
	}
	return Success(struct{}{})
}

func (d *Driver[U, D, P]) translate(ctx context.Context) Result[[]D] {
	translator, err := extension.One(d.registry, d.points.SourceTranslator)
	if err != nil {
		return Fatal[[]D](StatusHandlerFailed, err)
	}
	logger := d.logger
	listener := func(index int, produced int, err error) {
		if err != nil {
			logger.Debug("source set #%d failed: %v", index, err)
		} else {
			logger.Debug("source set #%d produced %d model(s)", index, produced)
		}
		if d.listener != nil {
			d.listener(index, produced, err)
		}
	}
	if span, ok := tracing.SpanFromContext(ctx); ok {
		span.WithCount("docflow.source_sets", len(d.sourceSets))
	}
	modules, err := executor.FanOut(ctx, translator, d.sourceSets,
		executor.WithWorkers(d.workers),
		executor.WithListener(listener))
	if err != nil {
		return Fatal[[]D](StatusHandlerFailed, err)
	}
	if len(modules) == 0 {
		return NoOp[[]D](NothingToDocument)
	}
	return Success(modules)
}

// forward passes every tracker entry, including handler messages, to the
// configured reporter.
func (d *Driver[U, D, P]) forward(entry progress.Entry) {
	if d.reporter != nil {
		d.reporter.Report(entry.Stage, entry.Message)
	}
}

// report logs unused extension points and the diagnostics summary of a
// rendered run.
func (d *Driver[U, D, P]) report(ctx context.Context, r *run) {
	r.reported = true
	if unused := d.registry.Unused(); len(unused) > 0 {
		r.logger.Info("unused extension points found: %s", strings.Join(unused, ", "))
	}
	r.logger.Info("%s", r.logger.Counts().Summary())
}

// execute announces and traces one stage, runs body, and attributes any
// failure to the stage.
func execute[T any](ctx context.Context, r *run, stage State, body func(ctx context.Context) Result[T]) Result[T] {
	r.outcome.Stage = stage
	r.reporter.Report(string(stage), stage.Message())
	r.logger.Progress("%s", stage.Message())

	ctx = types.EnsureExecutionContext(ctx, types.StageKey, string(stage))
	ctx, span := tracing.StartStage(ctx, string(stage))
	if err := ctx.Err(); err != nil {
		ret := Fatal[T](StatusHandlerFailed, &StageError{Stage: stage, Err: err})
		r.logger.Error("%v", ret.Err())
		tracing.EndSpan(span, ret.Err())
		return ret
	}

	ret := body(ctx)
	if ret.Status() == StatusHandlerFailed && ret.Err() != nil {
		ret = Fatal[T](StatusHandlerFailed, &StageError{Stage: stage, Err: ret.Err()})
		r.logger.Error("%v", ret.Err())
	}
	span.WithAttributes(map[string]string{"docflow.stage_status": string(ret.Status())})
	if ret.Status() == StatusNothingToDo {
		span.AddEvent(ret.Message())
	}
	tracing.EndSpan(span, ret.Err())
	return ret
}

func (r *run) finish(status Status, message string, cause error) *Outcome {
	r.outcome.Status = status
	r.outcome.Message = message
	r.outcome.Cause = cause
	if status == StatusSucceeded {
		r.outcome.Stage = StateDone
	}
	if !r.reported {
		r.logger.Info("%s", r.logger.Counts().Stopped(string(r.outcome.Stage), string(status)))
	}
	r.logger.Debug("run %s finished: status=%s stage=%s terminal=%s", r.outcome.RunID, status, r.outcome.Stage, status.Terminal())
	return r.outcome
}
