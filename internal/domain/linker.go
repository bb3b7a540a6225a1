package domain

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

const (
	tempLinkInfix    = ".linkdup-"
	tempLinkAttempts = 3
)

// LinkApplier turns a planned duplicate group into hardlinks of its origin.
// It trusts that the group was already verified byte for byte.
type LinkApplier interface {
	Apply(ctx context.Context, group m.DuplicateGroup) (m.MergeStats, error)
}

type linkApplier struct {
	fs adapter.FileSystem
}

// NewLinkApplier constructs a LinkApplier writing through fs.
func NewLinkApplier(fs adapter.FileSystem) LinkApplier {
	return &linkApplier{fs: fs}
}

// Apply stamps the origin with the planned mtime, then replaces every other
// member with a hardlink to the origin. Each replacement links a temporary
// sibling and renames it over the member, so an interruption leaves either
// the old or the new file at the path.
func (l *linkApplier) Apply(ctx context.Context, group m.DuplicateGroup) (m.MergeStats, error) {
	stats := m.MergeStats{Groups: 1}
	origin := group.Origin

	if err := l.fs.Chtimes(origin.Path, time.Time{}, group.ModTime); err != nil {
		return stats, &LinkError{Op: "chtimes", Origin: origin.Path, Path: origin.Path, Err: err}
	}

	replaced := make(map[m.FileID]uint64)

	for _, member := range group.Members {
		if member.Path == origin.Path {
			continue
		}

		if member.ID.Same(origin.ID) {
			stats.AlreadyLinked++
			continue
		}

		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := l.verify(origin.Path, member); err != nil {
			slog.Error("Member changed since scan", "path", member.Path, "error", err)
			return stats, err
		}

		if err := l.replace(origin.Path, member.Path); err != nil {
			slog.Error("Relink failed", "origin", origin.Path, "path", member.Path, "error", err)
			return stats, err
		}

		slog.Debug("Relinked", "origin", origin.Path, "path", member.Path)

		stats.Relinked++

		if !member.ID.Known() {
			stats.ReclaimedBytes += member.Size
			continue
		}

		// Data is only freed once every link to the old inode is gone.
		replaced[member.ID]++
		if replaced[member.ID] == member.Nlink {
			stats.ReclaimedBytes += member.Size
		}
	}

	return stats, nil
}

// verify checks that member is still the regular file that was scanned,
// without following a symlink swapped in at its path.
func (l *linkApplier) verify(origin m.Path, member m.FileRecord) error {
	info, err := l.fs.Lstat(member.Path)
	if err != nil {
		return &LinkError{Op: "verify", Origin: origin, Path: member.Path, Err: err}
	}

	if !info.Mode().IsRegular() || info.Size() != member.Size {
		return &LinkError{Op: "verify", Origin: origin, Path: member.Path, Err: ErrMemberChanged}
	}

	return nil
}

func (l *linkApplier) replace(origin, target m.Path) error {
	temp, err := l.linkTemp(origin, target)
	if err != nil {
		return err
	}

	if err := l.fs.Rename(temp, target); err != nil {
		_ = l.fs.Remove(temp)
		return &LinkError{Op: "rename", Origin: origin, Path: target, Err: err}
	}

	return nil
}

// isTempLink reports whether name is a temporary link left behind by an
// interrupted relink.
func isTempLink(name string) bool {
	if !strings.HasPrefix(name, ".") {
		return false
	}

	i := strings.LastIndex(name, tempLinkInfix)
	if i <= 1 {
		return false
	}

	_, err := uuid.Parse(name[i+len(tempLinkInfix):])

	return err == nil
}

// linkTemp creates a hardlink to origin next to target under an unused name.
func (l *linkApplier) linkTemp(origin, target m.Path) (m.Path, error) {
	dir, base := filepath.Split(string(target))

	var err error

	for range tempLinkAttempts {
		temp := m.Path(filepath.Join(dir, "."+base+tempLinkInfix+uuid.NewString()))

		err = l.fs.Link(origin, temp)
		if err == nil {
			return temp, nil
		}

		if !errors.Is(err, os.ErrExist) {
			break
		}
	}

	return "", &LinkError{Op: "link", Origin: origin, Path: target, Err: err}
}
