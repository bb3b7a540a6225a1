// Package adapter contains the filesystem and persistence adapters used by the
// deduplication workflow.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// ChunkSize is the read size used when streaming file contents.
const ChunkSize = 4096

// ErrLinkUnsupported is returned by Link on filesystems without hardlinks.
var ErrLinkUnsupported = errors.New("hardlinks are not supported by this filesystem")

// FileSystem abstracts the filesystem operations the domain layer relies on.
// Detection only reads through it; the link stage is the sole writer.
//
//nolint:interfacebloat // Keeps the domain free of direct os access.
type FileSystem interface {
	// Walk traverses root recursively in lexical order without following
	// symlinks.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// Stat returns metadata for path, following symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// Lstat returns metadata for path without following a final symlink.
	Lstat(path m.Path) (os.FileInfo, error)

	// RealPath resolves symlinks and returns an absolute, clean path.
	RealPath(path m.Path) (m.Path, error)

	// Open opens path for reading.
	Open(path m.Path) (afero.File, error)

	// HashFile streams path through digest in ChunkSize reads and returns
	// the hex encoded sum.
	HashFile(path m.Path, digest m.Digest) (string, error)

	// ReadAt reads up to n bytes at offset.
	ReadAt(path m.Path, offset int64, n int) ([]byte, error)

	// Chtimes sets access and modification times. A zero time leaves the
	// corresponding value unchanged.
	Chtimes(path m.Path, atime, mtime time.Time) error

	// Link creates newname as a hardlink to oldname.
	Link(oldname, newname m.Path) error

	// Rename atomically replaces newname with oldname.
	Rename(oldname, newname m.Path) error

	// Remove deletes a single file.
	Remove(path m.Path) error

	// FileID extracts the (device, inode) identity and link count from info.
	// The id is zero when the filesystem does not expose one.
	FileID(info os.FileInfo) (m.FileID, uint64)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalFileSystem implements FileSystem on top of an afero.Fs.
type LocalFileSystem struct {
	fs     afero.Fs
	native bool
}

// NewLocalFileSystem returns a FileSystem backed by the operating system.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{fs: afero.NewOsFs(), native: true}
}

// NewFileSystem wraps an arbitrary afero filesystem. Hardlinks and symlink
// resolution are only available when fs is the OS filesystem.
func NewFileSystem(fs afero.Fs) *LocalFileSystem {
	_, native := fs.(*afero.OsFs)

	return &LocalFileSystem{fs: fs, native: native}
}

// Walk iterates over every entry under root.
func (a *LocalFileSystem) Walk(root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// Stat returns metadata for path, following symlinks.
func (a *LocalFileSystem) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// Lstat returns metadata for path without following a final symlink.
func (a *LocalFileSystem) Lstat(path m.Path) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(string(path))
		return info, err
	}

	return a.fs.Stat(string(path))
}

// RealPath resolves symlinks on the OS filesystem and returns an absolute path.
func (a *LocalFileSystem) RealPath(path m.Path) (m.Path, error) {
	resolved := string(path)

	if a.native {
		var err error

		resolved, err = filepath.EvalSymlinks(resolved)
		if err != nil {
			return "", err
		}
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// Open opens path for reading.
func (a *LocalFileSystem) Open(path m.Path) (afero.File, error) {
	return a.fs.Open(string(path))
}

// HashFile returns the hex encoded digest of the file at path.
func (a *LocalFileSystem) HashFile(path m.Path, digest m.Digest) (string, error) {
	h, err := NewHash(digest)
	if err != nil {
		return "", err
	}

	f, err := a.fs.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, ChunkSize)

	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return "", readErr
		}
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ReadAt reads up to n bytes at offset. Reads past the end return what is
// available.
func (a *LocalFileSystem) ReadAt(path m.Path, offset int64, n int) ([]byte, error) {
	f, err := a.fs.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, n)

	read, err := f.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return buf[:read], nil
}

// Chtimes sets access and modification times.
func (a *LocalFileSystem) Chtimes(path m.Path, atime, mtime time.Time) error {
	return a.fs.Chtimes(string(path), atime, mtime)
}

// Link creates newname as a hardlink to oldname.
func (a *LocalFileSystem) Link(oldname, newname m.Path) error {
	if !a.native {
		return &os.LinkError{Op: "link", Old: string(oldname), New: string(newname), Err: ErrLinkUnsupported}
	}

	return os.Link(string(oldname), string(newname))
}

// Rename atomically replaces newname with oldname.
func (a *LocalFileSystem) Rename(oldname, newname m.Path) error {
	return a.fs.Rename(string(oldname), string(newname))
}

// Remove deletes a single file.
func (a *LocalFileSystem) Remove(path m.Path) error {
	return a.fs.Remove(string(path))
}

// FileID extracts the (device, inode) identity and link count from info.
func (a *LocalFileSystem) FileID(info os.FileInfo) (m.FileID, uint64) {
	return statFileID(info)
}
