package executor

import (
	"context"

	"github.com/viant/docflow/model/types"
)

// Fold applies handlers in order, each receiving the previous output.  With no
// handlers initial is returned unchanged.  The first failure aborts the fold
// and no partial value is returned.
func Fold[T any](ctx context.Context, handlers []types.Transformer[T], initial T) (T, error) {
	var zero T
	acc := initial
	for i, handler := range handlers {
		if handler == nil {
			return zero, &HandlerError{Index: i, Err: ErrNilHandler}
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		next, err := handler.Transform(ctx, acc)
		if err != nil {
			return zero, &HandlerError{Index: i, Err: err}
		}
		acc = next
	}
	return acc, nil
}

// Check folds every checker's verdict into one, in registration order.
func Check(ctx context.Context, checkers []types.Checker) types.Validity {
	ret := types.Valid()
	for _, checker := range checkers {
		if checker == nil {
			continue
		}
		ret = ret.And(checker.Check(ctx))
	}
	return ret
}
