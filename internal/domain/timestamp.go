package domain

import (
	"fmt"
	"time"

	m "linkdup.dev/pkg/linkdup/internal/model"
)

// TimestampPolicy computes the modification time given to the surviving inode.
type TimestampPolicy interface {
	ModTime(group m.Group, roots []m.Path) (time.Time, error)
}

// NewTimestampPolicy returns the policy implementing p. MtimeMerge and
// MtimeNewest are the same policy.
func NewTimestampPolicy(p m.MtimePolicy) (TimestampPolicy, error) {
	switch p {
	case m.MtimeOrder:
		return orderTime{}, nil
	case m.MtimeNewest, m.MtimeMerge:
		return newestTime{}, nil
	}

	return nil, fmt.Errorf("unknown mtime policy %q", p)
}

// orderTime takes the mtime of the first member under the highest priority
// root, whichever member keeps the data.
type orderTime struct{}

func (orderTime) ModTime(group m.Group, roots []m.Path) (time.Time, error) {
	rec, err := firstUnderRoots(group, roots)
	if err != nil {
		return time.Time{}, err
	}

	return rec.ModTime, nil
}

type newestTime struct{}

func (newestTime) ModTime(group m.Group, _ []m.Path) (time.Time, error) {
	if len(group) == 0 {
		return time.Time{}, errEmptyGroup
	}

	newest := group[0].ModTime
	for _, rec := range group[1:] {
		if rec.ModTime.After(newest) {
			newest = rec.ModTime
		}
	}

	return newest, nil
}
