package types

import "context"

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) Validity

func (f CheckerFunc) Check(ctx context.Context) Validity { return f(ctx) }

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc[U, D any] func(ctx context.Context, unit U) ([]D, error)

func (f TranslatorFunc[U, D]) Translate(ctx context.Context, unit U) ([]D, error) {
	return f(ctx, unit)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc[T any] func(ctx context.Context, value T) (T, error)

func (f TransformerFunc[T]) Transform(ctx context.Context, value T) (T, error) {
	return f(ctx, value)
}

// MergerFunc adapts a function to Merger.
type MergerFunc[D any] func(ctx context.Context, values []D) (D, error)

func (f MergerFunc[D]) Merge(ctx context.Context, values []D) (D, error) {
	return f(ctx, values)
}

// PageCreatorFunc adapts a function to PageCreator.
type PageCreatorFunc[D, P any] func(ctx context.Context, value D) (P, error)

func (f PageCreatorFunc[D, P]) CreatePages(ctx context.Context, value D) (P, error) {
	return f(ctx, value)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[P any] func(ctx context.Context, pages P) error

func (f RendererFunc[P]) Render(ctx context.Context, pages P) error { return f(ctx, pages) }
