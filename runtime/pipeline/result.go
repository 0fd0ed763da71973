package pipeline

// Result is the explicit outcome of one stage: a value, a graceful no-op, or a
// fatal failure.
type Result[T any] struct {
	value   T
	status  Status
	message string
	err     error
}

// Success wraps a stage value.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, status: StatusSucceeded}
}

// NoOp ends the run gracefully without an error.
func NoOp[T any](message string) Result[T] {
	return Result[T]{status: StatusNothingToDo, message: message}
}

// Fatal ends the run with err.
func Fatal[T any](status Status, err error) Result[T] {
	ret := Result[T]{status: status, err: err}
	if err != nil {
		ret.message = err.Error()
	}
	return ret
}

// From converts a handler call into a Result; a non-nil err is a handler
// failure.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fatal[T](StatusHandlerFailed, err)
	}
	return Success(v)
}

// Then chains the next stage body onto a successful result, propagating
// anything else unchanged.
func Then[In, Out any](r Result[In], next func(In) Result[Out]) Result[Out] {
	if !r.IsSuccess() {
		return Result[Out]{status: r.status, message: r.message, err: r.err}
	}
	return next(r.value)
}

func (r Result[T]) Value() T        { return r.value }
func (r Result[T]) Status() Status  { return r.status }
func (r Result[T]) Message() string { return r.message }
func (r Result[T]) Err() error      { return r.err }
func (r Result[T]) IsSuccess() bool { return r.status == StatusSucceeded }
