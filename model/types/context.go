package types

import "context"

type executionContextKey string

// ExecutionContextKey keys the run metadata map carried by handler contexts.
var ExecutionContextKey = executionContextKey("execution-context")

// Well known execution context entries.
const (
	RunIDKey = "runID"
	StageKey = "stage"
	NameKey  = "name"
)

// EnsureExecutionContext returns a context carrying a copy of the parent's run
// metadata extended with the supplied key/value pairs.
func EnsureExecutionContext(ctx context.Context, pairs ...string) context.Context {
	values := map[string]string{}
	if parent, ok := ctx.Value(ExecutionContextKey).(map[string]string); ok {
		for k, v := range parent {
			values[k] = v
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		values[pairs[i]] = pairs[i+1]
	}
	return context.WithValue(ctx, ExecutionContextKey, values)
}

// ExecutionValue returns a run metadata entry, or "" when absent.
func ExecutionValue(ctx context.Context, key string) string {
	if values, ok := ctx.Value(ExecutionContextKey).(map[string]string); ok {
		return values[key]
	}
	return ""
}
