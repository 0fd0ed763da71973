package extension

import "fmt"

// Cardinality declares how many handlers an extension point expects.  It is
// enforced when the point is resolved, never when a handler is registered.
type Cardinality int

const (
	// Many points accept any number of handlers applied in order.
	Many Cardinality = iota
	// Single points must resolve to exactly one handler.
	Single
)

func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Many:
		return "many"
	}
	return fmt.Sprintf("cardinality(%d)", int(c))
}

// Point names a pipeline slot accepting handlers of shape H.
type Point[H any] struct {
	name        string
	cardinality Cardinality
}

// NewPoint creates an ordered-many extension point.
func NewPoint[H any](name string) Point[H] {
	return Point[H]{name: name, cardinality: Many}
}

// NewSinglePoint creates an extension point that must resolve to exactly one
// handler.
func NewSinglePoint[H any](name string) Point[H] {
	return Point[H]{name: name, cardinality: Single}
}

// Name returns the point identifier.
func (p Point[H]) Name() string { return p.name }

// Cardinality returns the declared cardinality.
func (p Point[H]) Cardinality() Cardinality { return p.cardinality }

func (p Point[H]) String() string { return p.name }
