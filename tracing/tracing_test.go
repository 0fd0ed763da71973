package tracing

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mux sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.String()
}

func TestTracing(t *testing.T) {
	out := &syncBuffer{}
	require.NoError(t, InitWithWriter("docflow", "0.0.1", out))

	ctx, run := StartSpan(context.Background(), "docflow.run", KindInternal)
	current, ok := SpanFromContext(ctx)
	require.True(t, ok)
	require.NotNil(t, current)

	_, stage := StartStage(ctx, "merge")
	stage.WithCount("docflow.inputs", 2).AddEvent("merged")
	EndSpan(stage, errors.New("boom"))
	EndSpan(run, nil)

	data := out.String()
	assert.Contains(t, data, "docflow.stage merge")
	assert.Contains(t, data, "docflow.run")
	assert.Contains(t, data, "boom")

	_, ok = SpanFromContext(context.Background())
	assert.False(t, ok)
}

func TestSpan_Nil(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(span, nil)
}
