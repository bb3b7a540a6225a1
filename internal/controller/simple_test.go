package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 10, 11, 12, 345_000_000, time.UTC)
}

func TestSimpleUI_RunOutput(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()
	ui := NewSimpleUI(cmd)
	ui.now = fixedClock

	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithRunMode(), WithRoots([]m.Path{"/a", "/b"})))
	ui.DisplayScan(ctx, 12)
	ui.DisplayStage(ctx, m.StageStats{Name: "size", Input: 12, Grouped: 4, Groups: 2})
	require.NoError(t, ui.DisplayGroups(ctx, []m.Group{
		{{Path: "/a/f"}, {Path: "/b/f"}},
		{{Path: "/a/g"}, {Path: "/b/g"}},
	}))
	ui.DisplayMergeProgress(ctx, 0, 2)
	ui.DisplayMergeProgress(ctx, 1, 2)
	ui.Close(ctx)

	assert.Equal(t, "\"/a/f\" \"/b/f\"\n\"/a/g\" \"/b/g\"\n", stdout.String())
	assert.Equal(t,
		"2024-03-09 10:11:12.345 looking for files in \"/a\" \"/b\"\n"+
			"2024-03-09 10:11:12.345 found 12 files\n"+
			"2024-03-09 10:11:12.345 stage size: non-unique 4 groups 2\n"+
			"2024-03-09 10:11:12.345 creating hardlinks for 2 groups...\n"+
			"2024-03-09 10:11:12.345 done\n",
		stderr.String())
}

func TestSimpleUI_DryRunClose(t *testing.T) {
	cmd, _, stderr := newTestCommand()
	ui := NewSimpleUI(cmd)
	ui.now = fixedClock

	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithDryRunMode()))
	ui.Close(ctx)

	assert.Contains(t, stderr.String(), "done (dry run)\n")
}

func TestSimpleUI_ViewStart(t *testing.T) {
	cmd, _, stderr := newTestCommand()
	ui := NewSimpleUI(cmd)
	ui.now = fixedClock

	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithViewMode(), WithRoots([]m.Path{"/a"})))
	ui.Close(ctx)

	assert.Equal(t,
		"2024-03-09 10:11:12.345 report of \"/a\"\n"+
			"2024-03-09 10:11:12.345 done\n",
		stderr.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayGroups(ctx, []m.Group{{{Path: "/a"}}}), context.Canceled)
	ui.DisplayScan(ctx, 1)
	ui.DisplaySummary(ctx, m.RunReport{})

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderSummaryTable(t *testing.T) {
	report := m.RunReport{
		Scanned: 12,
		Stages: []m.StageStats{
			{Name: "size", Input: 12, Grouped: 4, Groups: 2, Elapsed: 1500 * time.Microsecond},
			{Name: "byte-exact", Input: 4, Grouped: 4, Groups: 2},
		},
		Groups: []m.ReportGroup{
			{Members: []m.Path{"/a/f", "/b/f"}},
			{Members: []m.Path{"/a/g", "/b/g", "/c/g"}},
		},
		Linking: m.MergeStats{Groups: 2, Relinked: 3, ReclaimedBytes: 3 * 1024 * 1024},
	}

	table := renderSummaryTable(report)

	assert.Contains(t, table, "STAGE")
	assert.Contains(t, table, "byte-exact")
	assert.Contains(t, table, "2ms")
	assert.Contains(t, table, "SCANNED 12")
	assert.Contains(t, table, "FILES 5")
	assert.Contains(t, table, "RELINKED 3")
	assert.Contains(t, table, "3.0 MIB")

	report.DryRun = true
	assert.Contains(t, renderSummaryTable(report), "RECLAIMED -")
}
