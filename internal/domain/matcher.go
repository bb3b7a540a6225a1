package domain

import (
	"bytes"
	"context"
	"errors"
	"io"

	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// Comparator decides whether two records hold identical data.
type Comparator interface {
	Name() string
	Equal(ctx context.Context, a, b m.FileRecord) (bool, error)
}

type byteExact struct {
	fs adapter.FileSystem
}

// ByteExact compares records byte for byte. Records sharing a known file id
// match without reading.
func ByteExact(fs adapter.FileSystem) Comparator {
	return &byteExact{fs: fs}
}

func (c *byteExact) Name() string { return "byte-exact" }

func (c *byteExact) Equal(ctx context.Context, a, b m.FileRecord) (bool, error) {
	if a.Size != b.Size {
		return false, nil
	}

	if a.ID.Same(b.ID) {
		return true, nil
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	equal, err := c.compareContents(a.Path, b.Path)
	if err != nil {
		return false, &CompareError{Left: a.Path, Right: b.Path, Err: err}
	}

	return equal, nil
}

func (c *byteExact) compareContents(left, right m.Path) (bool, error) {
	lf, err := c.fs.Open(left)
	if err != nil {
		return false, err
	}

	defer func() {
		_ = lf.Close()
	}()

	rf, err := c.fs.Open(right)
	if err != nil {
		return false, err
	}

	defer func() {
		_ = rf.Close()
	}()

	lbuf := make([]byte, adapter.ChunkSize)
	rbuf := make([]byte, adapter.ChunkSize)

	for {
		ln, lerr := io.ReadFull(lf, lbuf)
		rn, rerr := io.ReadFull(rf, rbuf)

		if err := readFailure(lerr); err != nil {
			return false, err
		}

		if err := readFailure(rerr); err != nil {
			return false, err
		}

		if ln != rn || !bytes.Equal(lbuf[:ln], rbuf[:rn]) {
			return false, nil
		}

		// A short read means both files ended at the same offset.
		if lerr != nil || rerr != nil {
			return lerr != nil && rerr != nil, nil
		}
	}
}

func readFailure(err error) error {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}

	return err
}
