package diagnostics

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Concurrent(t *testing.T) {
	counter := &Counter{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.RecordWarning()
			counter.RecordWarning()
			counter.RecordError()
		}()
	}
	wg.Wait()
	assert.Equal(t, Counts{Warnings: 100, Errors: 50}, counter.Counts())
	counter.Reset()
	assert.Equal(t, Counts{}, counter.Counts())
}

func TestCounts_Summary(t *testing.T) {
	testCases := []struct {
		name   string
		counts Counts
		expect string
	}{
		{name: "clean", counts: Counts{}, expect: "generation completed successfully"},
		{name: "warnings", counts: Counts{Warnings: 2}, expect: "generation completed with 2 warning(s) and 0 error(s)"},
		{name: "errors", counts: Counts{Warnings: 1, Errors: 3}, expect: "generation completed with 1 warning(s) and 3 error(s)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.counts.Summary())
		})
	}
}

func TestLog_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, WithLevel(LevelWarn), WithPrefix(""))
	logger.Debug("hidden %d", 1)
	logger.Info("hidden")
	logger.Warn("careful %s", "now")
	logger.Error("broken")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] careful now")
	assert.Contains(t, out, "[ERROR] broken")
	assert.Equal(t, Counts{Warnings: 1, Errors: 1}, logger.Counts())
}

func TestLog_FilteredWarningsStillCount(t *testing.T) {
	logger := Discard()
	logger.Warn("a")
	logger.Error("b")
	assert.Equal(t, Counts{Warnings: 1, Errors: 1}, logger.Counts())
	logger.Reset()
	assert.False(t, logger.Counts().Any())
}

func TestContext(t *testing.T) {
	counter := &Counter{}
	logger := New(&bytes.Buffer{}, WithCounter(counter))
	ctx := WithLogger(context.Background(), logger)
	Warn(ctx, "w")
	Error(ctx, "e")
	assert.Equal(t, Counts{Warnings: 1, Errors: 1}, counter.Counts())

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	fallback.Warn("ignored")
	assert.Equal(t, Counts{Warnings: 1, Errors: 1}, counter.Counts())
}

func TestCounts_Stopped(t *testing.T) {
	counts := Counts{Warnings: 2, Errors: 1}
	assert.Equal(t, "generation stopped at merge (handlerFailed) with 2 warning(s) and 1 error(s)", counts.Stopped("merge", "handlerFailed"))
}
