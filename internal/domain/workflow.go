// Package domain implements duplicate detection and hardlink merging.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"linkdup.dev/pkg/linkdup/internal/adapter"
	"linkdup.dev/pkg/linkdup/internal/controller"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// DedupArgs contains the arguments of a deduplication run.
type DedupArgs struct {
	Roots              []m.Path
	DryRun             bool
	Normalize          bool
	Relative           bool
	MinSize            int64
	MaxSize            int64
	SmartHash          bool
	SmartHashThreshold int64
	Digest             m.Digest
	Merge              m.MergeStrategy
	Mtime              m.MtimePolicy
	Workers            int
	Report             m.Path
}

// IndexArgs contains the arguments of an inventory scan.
type IndexArgs struct {
	Roots     []m.Path
	Output    m.Path
	Normalize bool
	MinSize   int64
	MaxSize   int64
	Digest    m.Digest
	Workers   int
}

// ViewArgs contains the arguments for displaying a saved run report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	Dedup(ctx context.Context, args DedupArgs) (m.RunReport, error)
	Index(ctx context.Context, args IndexArgs) error
	View(ctx context.Context, args ViewArgs) (m.RunReport, error)
}

type workflow struct {
	fs adapter.FileSystem
	adapter.ReportStore
	adapter.InventoryWriter
	controller.UI
	Scanner
	LinkApplier
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.FileSystem,
	reportStore adapter.ReportStore,
	inventory adapter.InventoryWriter,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:              fs,
		ReportStore:     reportStore,
		InventoryWriter: inventory,
		UI:              ui,
		Scanner:         NewScanner(fs),
		LinkApplier:     NewLinkApplier(fs),
	}
}

// Validate checks the arguments before anything is scanned.
func (a DedupArgs) Validate() error {
	if len(a.Roots) == 0 {
		return errors.New("at least one root path is required")
	}

	if err := validateSizes(a.MinSize, a.MaxSize); err != nil {
		return err
	}

	if a.SmartHashThreshold < 0 {
		return fmt.Errorf("smarthash threshold must not be negative, got %d", a.SmartHashThreshold)
	}

	if _, err := m.ParseDigest(string(a.Digest), false); err != nil {
		return err
	}

	if _, err := NewOriginSelector(a.Merge); err != nil {
		return err
	}

	if _, err := NewTimestampPolicy(a.Mtime); err != nil {
		return err
	}

	if a.Workers < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", a.Workers)
	}

	return nil
}

// Validate checks the arguments before anything is scanned.
func (a IndexArgs) Validate() error {
	if len(a.Roots) == 0 {
		return errors.New("at least one root path is required")
	}

	if a.Output == "" {
		return errors.New("an output csv path is required")
	}

	if _, err := m.ParseDigest(string(a.Digest), true); err != nil {
		return err
	}

	if a.Workers < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", a.Workers)
	}

	return validateSizes(a.MinSize, a.MaxSize)
}

func validateSizes(minSize, maxSize int64) error {
	if minSize < 0 {
		return fmt.Errorf("min size must not be negative, got %d", minSize)
	}

	if minSize >= maxSize {
		return fmt.Errorf("min size %d must be below max size %d", minSize, maxSize)
	}

	return nil
}

func (w *workflow) validateRoots(roots []m.Path) error {
	for _, root := range roots {
		info, err := w.fs.Stat(root)
		if err != nil {
			return fmt.Errorf("root %s: %w", root, err)
		}

		if !info.IsDir() {
			return fmt.Errorf("root %s is not a directory", root)
		}
	}

	return nil
}

// Dedup detects duplicate groups under the roots and, unless DryRun is set,
// merges each group into hardlinks of its origin.
func (w *workflow) Dedup(ctx context.Context, args DedupArgs) (m.RunReport, error) {
	report := m.RunReport{
		DryRun:    args.DryRun,
		Merge:     args.Merge,
		Mtime:     args.Mtime,
		StartedAt: time.Now(),
	}

	if err := args.Validate(); err != nil {
		return report, err
	}

	if err := w.validateRoots(args.Roots); err != nil {
		return report, err
	}

	scanOpts := ScanOptions{
		Roots:     args.Roots,
		MinSize:   args.MinSize,
		MaxSize:   args.MaxSize,
		Normalize: args.Normalize,
		Relative:  args.Relative,
	}

	roots, err := w.Roots(scanOpts)
	if err != nil {
		return report, err
	}

	report.Roots = roots

	mode := controller.WithRunMode()
	if args.DryRun {
		mode = controller.WithDryRunMode()
	}

	if err := w.Start(ctx, mode, controller.WithRoots(roots)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return report, err
	}

	defer w.Close(ctx)

	groups, err := w.detect(ctx, scanOpts, args, &report)
	if err != nil {
		return report, err
	}

	if err := w.DisplayGroups(ctx, groups); err != nil {
		return report, fmt.Errorf("display groups: %w", err)
	}

	planned, err := w.plan(groups, roots, args)
	if err != nil {
		return report, err
	}

	report.Groups = reportGroups(planned)

	if !args.DryRun {
		if err := w.merge(ctx, planned, &report); err != nil {
			return report, err
		}
	}

	report.EndedAt = time.Now()

	if args.Report != "" {
		if err := w.SaveReport(args.Report, report); err != nil {
			return report, err
		}
	}

	w.DisplaySummary(ctx, report)

	return report, nil
}

// detect runs the read-only stages and drops groups that already share a
// single inode.
func (w *workflow) detect(ctx context.Context, scanOpts ScanOptions, args DedupArgs, report *m.RunReport) ([]m.Group, error) {
	records, err := w.Scan(ctx, scanOpts)
	if err != nil {
		return nil, err
	}

	report.Scanned = len(records)
	w.DisplayScan(ctx, len(records))

	pipeline := NewPipeline(w.fs, PipelineOptions{
		Relative:           args.Relative,
		SmartHash:          args.SmartHash,
		SmartHashThreshold: args.SmartHashThreshold,
		Digest:             args.Digest,
		Workers:            args.Workers,
	})
	pipeline.Observer = func(st m.StageStats) {
		w.DisplayStage(ctx, st)
	}

	confirmed, stages, err := pipeline.Run(ctx, records)
	report.Stages = stages

	if err != nil {
		slog.Error("Detection failed", "error", err)
		return nil, err
	}

	groups := make([]m.Group, 0, len(confirmed))

	for _, g := range confirmed {
		if g.SingleFile() {
			report.Converged++
			continue
		}

		groups = append(groups, g)
	}

	slog.Info("Detection complete", "groups", len(groups), "converged", report.Converged)

	return groups, nil
}

// plan selects each group's origin and timestamp before anything is mutated.
func (w *workflow) plan(groups []m.Group, roots []m.Path, args DedupArgs) ([]m.DuplicateGroup, error) {
	selector, err := NewOriginSelector(args.Merge)
	if err != nil {
		return nil, err
	}

	policy, err := NewTimestampPolicy(args.Mtime)
	if err != nil {
		return nil, err
	}

	planned := make([]m.DuplicateGroup, 0, len(groups))

	for _, g := range groups {
		origin, err := selector.Select(g, roots)
		if err != nil {
			return nil, err
		}

		mtime, err := policy.ModTime(g, roots)
		if err != nil {
			return nil, err
		}

		planned = append(planned, m.DuplicateGroup{Members: g, Origin: origin, ModTime: mtime})
	}

	return planned, nil
}

func (w *workflow) merge(ctx context.Context, planned []m.DuplicateGroup, report *m.RunReport) error {
	for i, group := range planned {
		w.DisplayMergeProgress(ctx, i, len(planned))

		stats, err := w.Apply(ctx, group)
		report.Linking.Groups += stats.Groups
		report.Linking.Relinked += stats.Relinked
		report.Linking.AlreadyLinked += stats.AlreadyLinked
		report.Linking.ReclaimedBytes += stats.ReclaimedBytes

		if err != nil {
			return fmt.Errorf("merge group of %s: %w", group.Origin.Path, err)
		}
	}

	w.DisplayMergeProgress(ctx, len(planned), len(planned))

	return nil
}

func reportGroups(planned []m.DuplicateGroup) []m.ReportGroup {
	groups := make([]m.ReportGroup, 0, len(planned))

	for _, g := range planned {
		groups = append(groups, m.ReportGroup{
			Origin:  g.Origin.Path,
			ModTime: g.ModTime,
			Size:    g.Origin.Size,
			Members: g.Members.Paths(),
		})
	}

	return groups
}

// Index scans the roots and writes a CSV inventory of the records.
func (w *workflow) Index(ctx context.Context, args IndexArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	if err := w.validateRoots(args.Roots); err != nil {
		return err
	}

	// Inventory roots are always reported as real absolute paths.
	roots, err := w.Roots(ScanOptions{Roots: args.Roots, Normalize: true})
	if err != nil {
		return err
	}

	scanOpts := ScanOptions{
		Roots:     roots,
		MinSize:   args.MinSize,
		MaxSize:   args.MaxSize,
		Normalize: args.Normalize,
	}

	if err := w.Start(ctx, controller.WithIndexMode(), controller.WithRoots(roots)); err != nil {
		return err
	}

	defer w.Close(ctx)

	records, err := w.Scan(ctx, scanOpts)
	if err != nil {
		return err
	}

	w.DisplayScan(ctx, len(records))

	withHash := args.Digest != m.DigestNone

	var hashes []string
	if withHash {
		hashes, err = computeKeys(ctx, ByFullHash(w.fs, args.Digest), records, args.Workers)
		if err != nil {
			return err
		}
	}

	rows := make([]adapter.InventoryRow, len(records))
	for i, rec := range records {
		rows[i] = adapter.InventoryRow{Record: rec}
		if withHash {
			rows[i].Hash = hashes[i]
		}
	}

	if err := w.WriteInventory(args.Output, rows, withHash); err != nil {
		return err
	}

	slog.Info("Inventory written", "path", args.Output, "records", len(rows))

	return nil
}

// View loads a report written by Dedup and replays its groups and summary
// through the UI. Nothing on disk is touched.
func (w *workflow) View(ctx context.Context, args ViewArgs) (m.RunReport, error) {
	if args.Report == "" {
		return m.RunReport{}, errors.New("a report path is required")
	}

	report, err := w.LoadReport(args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return m.RunReport{}, err
	}

	if err := w.Start(ctx, controller.WithViewMode(), controller.WithRoots(report.Roots)); err != nil {
		return report, err
	}

	defer w.Close(ctx)

	groups := make([]m.Group, 0, len(report.Groups))
	for _, g := range report.Groups {
		group := make(m.Group, 0, len(g.Members))
		for _, p := range g.Members {
			group = append(group, m.FileRecord{Path: p, Size: g.Size, ModTime: g.ModTime})
		}

		groups = append(groups, group)
	}

	if err := w.DisplayGroups(ctx, groups); err != nil {
		return report, fmt.Errorf("display groups: %w", err)
	}

	w.DisplaySummary(ctx, report)

	return report, nil
}
