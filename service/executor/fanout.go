package executor

import (
	"context"

	"github.com/viant/docflow/model/types"
	"github.com/viant/docflow/tracing"
	"golang.org/x/sync/errgroup"
)

// Listener observes each fan-out task once it finishes.  It may be called
// concurrently and is never consulted for control flow.
type Listener func(index int, produced int, err error)

// Option customises a fan-out.
type Option func(*options)

type options struct {
	workers  int
	listener Listener
}

// WithWorkers bounds the number of concurrent tasks; n <= 0 means one task
// per partition with no bound.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithListener sets the task completion listener.
func WithListener(l Listener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// FanOut runs translator once per unit concurrently and concatenates the
// outputs in unit order, regardless of completion order.  If any task fails
// the remaining tasks see a cancelled context and only the error is
// returned.  An empty result is a non-nil empty slice.
func FanOut[U, D any](ctx context.Context, translator types.Translator[U, D], units []U, opts ...Option) ([]D, error) {
	if translator == nil {
		return nil, ErrNilHandler
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	slots := make([][]D, len(units))
	group, groupCtx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		group.SetLimit(o.workers)
	}
	for i := range units {
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			taskCtx, span := tracing.StartSpan(groupCtx, "docflow.translate.task", tracing.KindInternal)
			span.WithCount("docflow.partition", i)
			out, err := translator.Translate(taskCtx, units[i])
			span.WithCount("docflow.produced", len(out))
			tracing.EndSpan(span, err)
			if o.listener != nil {
				o.listener(i, len(out), err)
			}
			if err != nil {
				return &HandlerError{Index: i, Err: err}
			}
			slots[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, slot := range slots {
		total += len(slot)
	}
	ret := make([]D, 0, total)
	for _, slot := range slots {
		ret = append(ret, slot...)
	}
	return ret, nil
}
