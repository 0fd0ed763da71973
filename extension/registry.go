package extension

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

type entry struct {
	shape    reflect.Type
	handlers []any
	queried  bool
}

// Registry keeps handlers per extension point.
type Registry struct {
	entries map[string]*entry
	frozen  bool
	mux     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register appends handler to the point's ordered list.  Duplicates are kept.
func Register[H any](r *Registry, point Point[H], handler H) error {
	if isNil(handler) {
		return fmt.Errorf("%w for point %q", ErrNilHandler, point.name)
	}
	shape := reflect.TypeFor[H]()
	r.mux.Lock()
	defer r.mux.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register into %q", ErrFrozen, point.name)
	}
	e, ok := r.entries[point.name]
	if !ok {
		e = &entry{shape: shape}
		r.entries[point.name] = e
	}
	if e.shape != shape {
		return fmt.Errorf("%w: point %q holds %v, got %v", ErrShapeMismatch, point.name, e.shape, shape)
	}
	e.handlers = append(e.handlers, handler)
	return nil
}

// All returns the point's handlers in registration order; never nil.  A
// point registered with a different handler type yields no handlers; use
// Resolve to see the mismatch.
func All[H any](r *Registry, point Point[H]) []H {
	handlers, _ := lookup(r, point)
	return handlers
}

// Resolve returns the point's handlers after checking them against the
// point's declared cardinality.  Querying a point with a handler type other
// than the registered one fails with ErrShapeMismatch.
func Resolve[H any](r *Registry, point Point[H]) ([]H, error) {
	handlers, err := lookup(r, point)
	if err != nil {
		return nil, err
	}
	if point.cardinality != Single {
		return handlers, nil
	}
	switch len(handlers) {
	case 1:
		return handlers, nil
	case 0:
		return nil, &ResolutionError{Point: point.name, Err: ErrMissingHandler}
	default:
		return nil, &ResolutionError{Point: point.name, Count: len(handlers), Err: ErrAmbiguousHandler}
	}
}

// One resolves a point that must hold exactly one handler, whatever its
// declared cardinality.
func One[H any](r *Registry, point Point[H]) (H, error) {
	var zero H
	point.cardinality = Single
	handlers, err := Resolve(r, point)
	if err != nil {
		return zero, err
	}
	return handlers[0], nil
}

func lookup[H any](r *Registry, point Point[H]) ([]H, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	e, ok := r.entries[point.name]
	if !ok {
		return []H{}, nil
	}
	e.queried = true
	if shape := reflect.TypeFor[H](); e.shape != shape {
		return []H{}, &ResolutionError{
			Point: point.name,
			Count: len(e.handlers),
			Err:   fmt.Errorf("%w: registered as %v, queried as %v", ErrShapeMismatch, e.shape, shape),
		}
	}
	ret := make([]H, 0, len(e.handlers))
	for _, h := range e.handlers {
		ret = append(ret, h.(H))
	}
	return ret, nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mux.Lock()
	r.frozen = true
	r.mux.Unlock()
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.frozen
}

// Points returns the sorted names of points with at least one handler.
func (r *Registry) Points() []string {
	return r.names(func(e *entry) bool { return len(e.handlers) > 0 })
}

// Unused returns the sorted names of points that have handlers but were
// never queried.
func (r *Registry) Unused() []string {
	return r.names(func(e *entry) bool { return len(e.handlers) > 0 && !e.queried })
}

func (r *Registry) names(filter func(e *entry) bool) []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if filter(e) {
			ret = append(ret, name)
		}
	}
	sort.Strings(ret)
	return ret
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
