package types

import "context"

// Checker reports whether the run may start.
type Checker interface {
	Check(ctx context.Context) Validity
}

// Translator turns one input partition (a source set) into zero or more
// documentable models.
type Translator[U, D any] interface {
	Translate(ctx context.Context, unit U) ([]D, error)
}

// Transformer is an endomorphic stage handler; its output feeds the next
// transformer registered for the same extension point.
type Transformer[T any] interface {
	Transform(ctx context.Context, value T) (T, error)
}

// Merger folds per-partition documentables into a single one.
type Merger[D any] interface {
	Merge(ctx context.Context, values []D) (D, error)
}

// PageCreator converts the merged documentable into a page tree.
type PageCreator[D, P any] interface {
	CreatePages(ctx context.Context, value D) (P, error)
}

// Renderer writes a page tree out. Its side effects are opaque to the engine.
type Renderer[P any] interface {
	Render(ctx context.Context, pages P) error
}
