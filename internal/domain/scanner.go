package domain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// ScanOptions controls which files the Scanner records.
type ScanOptions struct {
	Roots     []m.Path
	MinSize   int64 // exclusive
	MaxSize   int64 // exclusive
	Normalize bool
	Relative  bool
}

// Scanner walks root paths and emits file records in discovery order.
type Scanner interface {
	// Roots returns the roots as they will be walked and matched against:
	// cleaned, and resolved to real absolute paths when normalizing.
	Roots(opts ScanOptions) ([]m.Path, error)
	Scan(ctx context.Context, opts ScanOptions) ([]m.FileRecord, error)
}

type scanner struct {
	fs adapter.FileSystem
}

// NewScanner constructs a Scanner reading through fs.
func NewScanner(fs adapter.FileSystem) Scanner {
	return &scanner{fs: fs}
}

func (s *scanner) Roots(opts ScanOptions) ([]m.Path, error) {
	roots := make([]m.Path, 0, len(opts.Roots))

	for _, root := range opts.Roots {
		cleaned := m.Path(filepath.Clean(string(root)))

		if opts.Normalize {
			resolved, err := s.fs.RealPath(cleaned)
			if err != nil {
				return nil, &ScanError{Path: root, Err: err}
			}

			cleaned = resolved
		}

		roots = append(roots, cleaned)
	}

	return roots, nil
}

func (s *scanner) Scan(ctx context.Context, opts ScanOptions) ([]m.FileRecord, error) {
	roots, err := s.Roots(opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var records []m.FileRecord

	for _, root := range roots {
		slog.Debug("Scanning root", "root", root)

		walkErr := s.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return &ScanError{Path: m.Path(path), Err: err}
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			rec, ok, recErr := s.record(root, m.Path(path), info, opts)
			if recErr != nil || !ok {
				return recErr
			}

			if _, dup := seen[rec.Path]; dup {
				slog.Debug("Skipping path seen earlier", "path", rec.Path)
				return nil
			}

			seen[rec.Path] = struct{}{}
			records = append(records, rec)

			return nil
		})
		if walkErr != nil {
			slog.Error("Scan failed", "root", root, "error", walkErr)
			return nil, walkErr
		}
	}

	slog.Info("Scan complete", "roots", len(roots), "records", len(records))

	return records, nil
}

// record builds the FileRecord for one walked entry. ok is false when the
// entry is filtered out.
func (s *scanner) record(root, path m.Path, info os.FileInfo, opts ScanOptions) (m.FileRecord, bool, error) {
	if info.IsDir() {
		return m.FileRecord{}, false, nil
	}

	if isTempLink(info.Name()) {
		slog.Warn("Skipping leftover temporary link", "path", path)
		return m.FileRecord{}, false, nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !opts.Normalize {
			return m.FileRecord{}, false, nil
		}

		target, err := s.fs.Stat(path)
		if err != nil {
			return m.FileRecord{}, false, &ScanError{Path: path, Err: err}
		}

		info = target
	}

	if !info.Mode().IsRegular() {
		return m.FileRecord{}, false, nil
	}

	size := info.Size()
	if size <= opts.MinSize || size >= opts.MaxSize {
		return m.FileRecord{}, false, nil
	}

	if opts.Normalize {
		resolved, err := s.fs.RealPath(path)
		if err != nil {
			return m.FileRecord{}, false, &ScanError{Path: path, Err: err}
		}

		path = resolved
	}

	id, nlink := s.fs.FileID(info)
	rec := m.FileRecord{
		Path:    path,
		Root:    root,
		ID:      id,
		Nlink:   nlink,
		Size:    size,
		ModTime: info.ModTime(),
	}

	if opts.Relative {
		rel, err := filepath.Rel(string(root), string(path))
		if err != nil {
			return m.FileRecord{}, false, &ScanError{Path: path, Err: err}
		}

		rec.RelPath = m.Path(rel)
	}

	return rec, true, nil
}
