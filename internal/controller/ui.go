// Package controller provides the output adapters that report deduplication
// progress and results.
package controller

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeDryRun
	ModeIndex
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	roots []m.Path
}

// WithRunMode sets the UI to report a mutating run.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithDryRunMode sets the UI to report a detection-only run.
func WithDryRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDryRun
	}
}

// WithIndexMode sets the UI to report an inventory scan.
func WithIndexMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeIndex
	}
}

// WithViewMode sets the UI to replay a saved report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithRoots records the roots being scanned.
func WithRoots(roots []m.Path) StartOption {
	return func(c *StartConfig) {
		c.roots = roots
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how a run is reported. Group lines go to standard output and are
// part of the tool's contract; everything else is progress.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayScan(ctx context.Context, records int)
	DisplayStage(ctx context.Context, stats m.StageStats)
	DisplayGroups(ctx context.Context, groups []m.Group) error
	DisplayMergeProgress(ctx context.Context, done, total int)
	DisplaySummary(ctx context.Context, report m.RunReport)
}

// NewUI returns the Bubble Tea UI when useTUI is set, the plain UI otherwise.
func NewUI(cmd *cobra.Command, useTUI bool) UI {
	if useTUI {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// FormatGroup renders a group as its quoted, space separated member paths.
func FormatGroup(group m.Group) string {
	var b strings.Builder

	for i, rec := range group {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteByte('"')
		b.WriteString(string(rec.Path))
		b.WriteByte('"')
	}

	return b.String()
}

func writeGroups(out io.Writer, groups []m.Group) error {
	for _, group := range groups {
		if _, err := io.WriteString(out, FormatGroup(group)+"\n"); err != nil {
			return err
		}
	}

	return nil
}
