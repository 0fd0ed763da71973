package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docflow/tracing"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDriver_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, tracing.InitWithExporter("docflow", "test", exporter))
	exporter.Reset()

	f := newFixture(t).complete(t)
	outcome := f.driver(t, []string{"jvm", "js", "native"}, WithName("api")).Run(context.Background())
	require.NoError(t, outcome.Err())

	spans := exporter.GetSpans()
	byName := map[string][]tracetest.SpanStub{}
	for _, span := range spans {
		byName[span.Name] = append(byName[span.Name], span)
	}

	require.Len(t, byName["docflow.run api"], 1)
	run := byName["docflow.run api"][0]
	for _, stage := range Stages {
		stageSpans := byName["docflow.stage "+string(stage)]
		require.Len(t, stageSpans, 1, string(stage))
		assert.Equal(t, run.SpanContext.SpanID(), stageSpans[0].Parent.SpanID(), string(stage))
		assert.Equal(t, run.SpanContext.TraceID(), stageSpans[0].SpanContext.TraceID(), string(stage))
	}

	tasks := byName["docflow.translate.task"]
	require.Len(t, tasks, 3)
	translate := byName["docflow.stage "+string(StateTranslate)][0]
	for _, task := range tasks {
		assert.Equal(t, translate.SpanContext.SpanID(), task.Parent.SpanID())
	}
	assert.Len(t, spans, 1+len(Stages)+3)
}
