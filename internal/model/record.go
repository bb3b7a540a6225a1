// Package model defines the data structures shared by the scanning, grouping
// and merging stages.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Under reports whether p is root itself or lies below it. The match is done
// on whole path components, so "/data/a" is not under "/data/ab".
func (p Path) Under(root Path) bool {
	r := filepath.Clean(string(root))
	s := filepath.Clean(string(p))

	if s == r {
		return true
	}

	if r == string(filepath.Separator) {
		return strings.HasPrefix(s, r)
	}

	return strings.HasPrefix(s, r+string(filepath.Separator))
}

// FileID identifies an on-disk data object by device and inode.
//
// The zero value means the filesystem did not expose an identity; it never
// equals anything, itself included.
type FileID struct {
	Dev uint64
	Ino uint64
}

// Known reports whether the id was read from the filesystem.
func (id FileID) Known() bool {
	return id != FileID{}
}

// Same reports whether both ids are known and refer to the same data.
func (id FileID) Same(other FileID) bool {
	return id.Known() && id == other
}

func (id FileID) String() string {
	return fmt.Sprintf("%d:%d", id.Dev, id.Ino)
}

// FileRecord is an immutable metadata snapshot of one scanned file.
type FileRecord struct {
	Path    Path
	Root    Path
	RelPath Path // empty unless relative grouping was requested
	ID      FileID
	Nlink   uint64
	Size    int64
	ModTime time.Time
}

// Group is an ordered bucket of records sharing a key. Member order is
// discovery order.
type Group []FileRecord

// Paths returns the member paths in group order.
func (g Group) Paths() []Path {
	paths := make([]Path, 0, len(g))
	for _, rec := range g {
		paths = append(paths, rec.Path)
	}

	return paths
}

// SingleFile reports whether every member shares one known file id.
func (g Group) SingleFile() bool {
	if len(g) == 0 {
		return false
	}

	for _, rec := range g[1:] {
		if !rec.ID.Same(g[0].ID) {
			return false
		}
	}

	return g[0].ID.Known()
}

// DuplicateGroup is a confirmed set of byte-identical files.
type DuplicateGroup struct {
	Members Group
	Origin  FileRecord
	ModTime time.Time
}
