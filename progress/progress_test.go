package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docflow/internal/clock"
)

func TestProgress_Report(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	clock.NowFunc = func() time.Time { return now }
	defer func() { clock.NowFunc = time.Now }()

	var observed []Entry
	ctx, tracker := WithNewTracker(context.Background(), "run-1", "docs", func(e Entry) {
		observed = append(observed, e)
	})

	now = start.Add(time.Second)
	ReportCtx(ctx, "validityCheck", "Validity check")
	now = start.Add(3 * time.Second)
	tracker.Report("translate", "Creating documentation models")

	entries := tracker.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, time.Second, entries[0].Elapsed)
	assert.Equal(t, 3*time.Second, entries[1].Elapsed)
	assert.Equal(t, "validityCheck", entries[0].Stage)
	assert.Equal(t, "translate", entries[1].Stage)
	assert.Equal(t, entries, observed)

	fromCtx, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "run-1", fromCtx.RunID)
}

func TestProgress_Nil(t *testing.T) {
	var p *Progress
	p.Report("x", "y")
	assert.Nil(t, p.Entries())
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
