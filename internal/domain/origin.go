package domain

import (
	"fmt"

	m "linkdup.dev/pkg/linkdup/internal/model"
)

// OriginSelector picks the member of a confirmed group whose data survives.
type OriginSelector interface {
	Select(group m.Group, roots []m.Path) (m.FileRecord, error)
}

// NewOriginSelector returns the selector implementing strategy.
func NewOriginSelector(strategy m.MergeStrategy) (OriginSelector, error) {
	switch strategy {
	case m.MergeMaxLinks:
		return maxLinks{}, nil
	case m.MergeOrder:
		return rootOrder{}, nil
	}

	return nil, fmt.Errorf("unknown merge strategy %q", strategy)
}

// maxLinks keeps the file already shared by the most members, so the fewest
// paths need relinking. Ties go to the file discovered first.
type maxLinks struct{}

func (maxLinks) Select(group m.Group, _ []m.Path) (m.FileRecord, error) {
	if len(group) == 0 {
		return m.FileRecord{}, errEmptyGroup
	}

	_, _, byID := Group([]m.FileRecord(group), fileIDKey, 1)

	best := byID[0]
	for _, candidate := range byID[1:] {
		if len(candidate) > len(best) {
			best = candidate
		}
	}

	return best[0], nil
}

// fileIDKey keys records by file id. Records without a known id get a key of
// their own, since nothing is known to share their data.
func fileIDKey(rec m.FileRecord) string {
	if rec.ID.Known() {
		return rec.ID.String()
	}

	return "path:" + string(rec.Path)
}

// rootOrder keeps the first member under the highest priority root.
type rootOrder struct{}

func (rootOrder) Select(group m.Group, roots []m.Path) (m.FileRecord, error) {
	return firstUnderRoots(group, roots)
}

func firstUnderRoots(group m.Group, roots []m.Path) (m.FileRecord, error) {
	for _, root := range roots {
		for _, rec := range group {
			if rec.Path.Under(root) {
				return rec, nil
			}
		}
	}

	return m.FileRecord{}, &OriginSelectionError{Members: group.Paths(), Roots: roots}
}
