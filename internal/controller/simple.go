package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

const logTimeFormat = "2006-01-02 15:04:05.000"

// SimpleUI prints groups to the command's output and timestamped progress
// lines to its error stream.
type SimpleUI struct {
	cmd   *cobra.Command
	now   func() time.Time
	start StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, now: time.Now}
}

// Start announces the roots being scanned.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.start = newStartConfig(options)

	quoted := make([]string, 0, len(s.start.roots))
	for _, root := range s.start.roots {
		quoted = append(quoted, fmt.Sprintf("%q", root))
	}

	if s.start.mode == ModeView {
		s.logf("report of %s", strings.Join(quoted, " "))
		return nil
	}

	s.logf("looking for files in %s", strings.Join(quoted, " "))

	return nil
}

// Close reports the end of the run.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.start.mode == ModeDryRun {
		s.logf("done (dry run)")
		return
	}

	s.logf("done")
}

// DisplayScan reports how many records the scan produced.
func (s *SimpleUI) DisplayScan(ctx context.Context, records int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("found %d files", records)
}

// DisplayStage reports one finished stage.
func (s *SimpleUI) DisplayStage(ctx context.Context, stats m.StageStats) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("stage %s: non-unique %d groups %d", stats.Name, stats.Grouped, stats.Groups)
}

// DisplayGroups prints one line per confirmed group to standard output.
func (s *SimpleUI) DisplayGroups(ctx context.Context, groups []m.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeGroups(s.cmd.OutOrStdout(), groups)
}

// DisplayMergeProgress reports relinking progress.
func (s *SimpleUI) DisplayMergeProgress(ctx context.Context, done, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if done == 0 {
		s.logf("creating hardlinks for %d groups...", total)
	}
}

// DisplaySummary prints the per-stage table and the merge totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "\n%s", renderSummaryTable(report))
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stage", "Input", "Non-unique", "Groups", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, st := range report.Stages {
		table.Append([]string{
			st.Name,
			fmt.Sprintf("%d", st.Input),
			fmt.Sprintf("%d", st.Grouped),
			fmt.Sprintf("%d", st.Groups),
			st.Elapsed.Round(time.Millisecond).String(),
		})
	}

	reclaimed := "-"
	if !report.DryRun {
		reclaimed = humanize.IBytes(uint64(max(report.Linking.ReclaimedBytes, 0)))
	}

	table.SetFooter([]string{
		fmt.Sprintf("Scanned %d", report.Scanned),
		fmt.Sprintf("Groups %d", len(report.Groups)),
		fmt.Sprintf("Files %d", report.DuplicateFiles()),
		fmt.Sprintf("Relinked %d", report.Linking.Relinked),
		"Reclaimed " + reclaimed,
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) logf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %s\n", s.now().Format(logTimeFormat), fmt.Sprintf(format, args...))
}
