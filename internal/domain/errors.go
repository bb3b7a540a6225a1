package domain

import (
	"errors"
	"fmt"

	m "linkdup.dev/pkg/linkdup/internal/model"
)

var errEmptyGroup = errors.New("empty group")

// ErrMemberChanged reports a group member that is no longer the regular file
// of the scanned size.
var ErrMemberChanged = errors.New("file changed since scan")

// ScanError reports an unreadable directory or file met while walking a root.
type ScanError struct {
	Path m.Path
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// HashError reports a read failure while computing a content key.
type HashError struct {
	Path m.Path
	Err  error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("hash %s: %v", e.Path, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

// CompareError reports a read failure during byte comparison.
type CompareError struct {
	Left  m.Path
	Right m.Path
	Err   error
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("compare %s with %s: %v", e.Left, e.Right, e.Err)
}

func (e *CompareError) Unwrap() error { return e.Err }

// OriginSelectionError is returned when no group member lies under any root.
type OriginSelectionError struct {
	Members []m.Path
	Roots   []m.Path
}

func (e *OriginSelectionError) Error() string {
	return fmt.Sprintf("no member of group %q lies under roots %q", e.Members, e.Roots)
}

// LinkError reports a failed step while relinking a path to its origin.
type LinkError struct {
	Op     string
	Origin m.Path
	Path   m.Path
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Path, e.Origin, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }
