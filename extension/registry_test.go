package extension

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docflow/model/types"
)

var (
	testTransformers = NewPoint[types.Transformer[int]]("test.transformer")
	testRenderer     = NewSinglePoint[types.Renderer[string]]("test.renderer")
)

func addN(n int) types.Transformer[int] {
	return types.TransformerFunc[int](func(ctx context.Context, v int) (int, error) { return v + n, nil })
}

func TestRegistry_All(t *testing.T) {
	registry := NewRegistry()
	assert.NotNil(t, All(registry, testTransformers))
	assert.Empty(t, All(registry, testTransformers))

	first, second := addN(1), addN(2)
	require.NoError(t, Register(registry, testTransformers, first))
	require.NoError(t, Register(registry, testTransformers, second))
	require.NoError(t, Register(registry, testTransformers, first))

	handlers := All(registry, testTransformers)
	require.Len(t, handlers, 3, "duplicates are kept")
	var values []int
	for _, h := range handlers {
		v, err := h.Transform(context.Background(), 0)
		require.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2, 1}, values, "registration order is preserved")
}

func TestRegistry_One(t *testing.T) {
	render := types.RendererFunc[string](func(ctx context.Context, pages string) error { return nil })
	testCases := []struct {
		name      string
		handlers  int
		expectErr error
	}{
		{name: "missing", handlers: 0, expectErr: ErrMissingHandler},
		{name: "single", handlers: 1},
		{name: "ambiguous", handlers: 2, expectErr: ErrAmbiguousHandler},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			registry := NewRegistry()
			for i := 0; i < tc.handlers; i++ {
				require.NoError(t, Register[types.Renderer[string]](registry, testRenderer, render))
			}
			handler, err := One(registry, testRenderer)
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr))
				var resolution *ResolutionError
				require.True(t, errors.As(err, &resolution))
				assert.Equal(t, testRenderer.Name(), resolution.Point)
				assert.Contains(t, err.Error(), testRenderer.Name())
				assert.Nil(t, handler)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, handler)
		})
	}
}

func TestResolve_Cardinality(t *testing.T) {
	registry := NewRegistry()
	handlers, err := Resolve(registry, testTransformers)
	require.NoError(t, err, "many points accept zero handlers")
	assert.Empty(t, handlers)

	_, err = Resolve(registry, testRenderer)
	assert.ErrorIs(t, err, ErrMissingHandler)
	assert.Equal(t, "single", testRenderer.Cardinality().String())
	assert.Equal(t, "many", testTransformers.Cardinality().String())
}

func TestRegistry_Freeze(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register(registry, testTransformers, addN(1)))
	registry.Freeze()
	assert.True(t, registry.Frozen())
	err := Register(registry, testTransformers, addN(2))
	assert.ErrorIs(t, err, ErrFrozen)
	assert.Len(t, All(registry, testTransformers), 1)
}

func TestRegistry_ShapeMismatch(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register(registry, testTransformers, addN(1)))
	clash := NewPoint[types.Transformer[string]](testTransformers.Name())
	err := Register[types.Transformer[string]](registry, clash, types.TransformerFunc[string](func(ctx context.Context, v string) (string, error) { return v, nil }))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestResolve_ShapeMismatch(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register(registry, testTransformers, addN(1)))
	clash := NewSinglePoint[types.Transformer[string]](testTransformers.Name())

	_, err := Resolve(registry, clash)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	var resolutionErr *ResolutionError
	require.True(t, errors.As(err, &resolutionErr))
	assert.Equal(t, testTransformers.Name(), resolutionErr.Point)
	assert.Contains(t, err.Error(), testTransformers.Name())

	_, err = One(registry, clash)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotErrorIs(t, err, ErrMissingHandler)

	assert.Equal(t, []types.Transformer[string]{}, All(registry, clash))
	handlers, err := Resolve(registry, testTransformers)
	require.NoError(t, err)
	assert.Len(t, handlers, 1)
}

func TestRegistry_NilHandler(t *testing.T) {
	registry := NewRegistry()
	var fn types.TransformerFunc[int]
	assert.ErrorIs(t, Register[types.Transformer[int]](registry, testTransformers, fn), ErrNilHandler)
	assert.ErrorIs(t, Register[types.Transformer[int]](registry, testTransformers, nil), ErrNilHandler)
}

func TestRegistry_Unused(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register(registry, testTransformers, addN(1)))
	require.NoError(t, Register[types.Renderer[string]](registry, testRenderer, types.RendererFunc[string](func(ctx context.Context, pages string) error { return nil })))
	assert.Equal(t, []string{"test.renderer", "test.transformer"}, registry.Points())
	assert.Equal(t, []string{"test.renderer", "test.transformer"}, registry.Unused())

	_ = All(registry, testTransformers)
	assert.Equal(t, []string{"test.renderer"}, registry.Unused())
	_, _ = One(registry, testRenderer)
	assert.Empty(t, registry.Unused())
}
