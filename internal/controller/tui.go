package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	countStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI renders live progress with Bubble Tea on the command's error stream.
// Group lines still go to standard output untouched.
type TUI struct {
	cmd     *cobra.Command
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

type scanMsg struct{ records int }

type stageMsg struct{ stats m.StageStats }

type groupsMsg struct{ count int }

type mergeMsg struct{ done, total int }

type summaryMsg struct{ report m.RunReport }

type finishedMsg struct{}

// Start launches the Bubble Tea program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	t.done = make(chan struct{})
	t.program = tea.NewProgram(
		newProgressModel(cfg),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Warn("Progress view stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the program and waits for its final frame.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Send(finishedMsg{})
	<-t.done
}

// DisplayScan reports how many records the scan produced.
func (t *TUI) DisplayScan(_ context.Context, records int) {
	t.send(scanMsg{records: records})
}

// DisplayStage reports one finished stage.
func (t *TUI) DisplayStage(_ context.Context, stats m.StageStats) {
	t.send(stageMsg{stats: stats})
}

// DisplayGroups prints one line per confirmed group to standard output.
func (t *TUI) DisplayGroups(ctx context.Context, groups []m.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(groupsMsg{count: len(groups)})

	return writeGroups(t.cmd.OutOrStdout(), groups)
}

// DisplayMergeProgress advances the relink progress bar.
func (t *TUI) DisplayMergeProgress(_ context.Context, done, total int) {
	t.send(mergeMsg{done: done, total: total})
}

// DisplaySummary hands the final report to the view.
func (t *TUI) DisplaySummary(_ context.Context, report m.RunReport) {
	t.send(summaryMsg{report: report})
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

type progressModel struct {
	mode     StartMode
	roots    []m.Path
	spinner  spinner.Model
	bar      progress.Model
	records  int
	stages   []m.StageStats
	groups   int
	merged   int
	toMerge  int
	summary  string
	finished bool
}

func newProgressModel(cfg StartConfig) progressModel {
	return progressModel{
		mode:    cfg.mode,
		roots:   cfg.roots,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		records: -1,
		groups:  -1,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanMsg:
		pm.records = msg.records
	case stageMsg:
		pm.stages = append(pm.stages, msg.stats)
	case groupsMsg:
		pm.groups = msg.count
	case mergeMsg:
		pm.merged, pm.toMerge = msg.done, msg.total
	case summaryMsg:
		pm.summary = renderSummaryTable(msg.report)
	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("linkdup " + pm.modeLabel()))
	b.WriteString("\n")

	for _, root := range pm.roots {
		b.WriteString(footerStyle.Render("  " + string(root)))
		b.WriteString("\n")
	}

	if pm.records >= 0 {
		fmt.Fprintf(&b, "scanned %s files\n", countStyle.Render(fmt.Sprintf("%d", pm.records)))
	}

	for _, st := range pm.stages {
		b.WriteString(stageStyle.Render(fmt.Sprintf("  %-24s %8d -> %d groups", st.Name, st.Grouped, st.Groups)))
		b.WriteString("\n")
	}

	if pm.groups >= 0 {
		fmt.Fprintf(&b, "duplicate groups %s\n", countStyle.Render(fmt.Sprintf("%d", pm.groups)))
	}

	if pm.toMerge > 0 {
		b.WriteString(pm.bar.ViewAs(float64(pm.merged) / float64(pm.toMerge)))
		fmt.Fprintf(&b, " %d/%d\n", pm.merged, pm.toMerge)
	}

	if pm.summary != "" {
		b.WriteString("\n")
		b.WriteString(pm.summary)
	}

	if !pm.finished {
		b.WriteString(pm.spinner.View())
		b.WriteString(" working\n")
	}

	return b.String()
}

func (pm progressModel) modeLabel() string {
	switch pm.mode {
	case ModeDryRun:
		return "(dry run)"
	case ModeIndex:
		return "index"
	case ModeView:
		return "report"
	case ModeRun:
	}

	return "run"
}
