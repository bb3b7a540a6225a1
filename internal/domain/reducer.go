package domain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

const (
	// FastHashWindow is the number of bytes sampled at a file's midpoint.
	FastHashWindow = 4
	// DefaultSmartHashThreshold is the size from which the adaptive hash
	// switches from a full digest to the midpoint sample.
	DefaultSmartHashThreshold int64 = 1024
)

// Reducer derives the partition key of a record for one pipeline stage.
type Reducer interface {
	Name() string
	// Costly reports whether Key reads file contents. Costly keys are
	// computed on the worker pool.
	Costly() bool
	Key(ctx context.Context, rec m.FileRecord) (string, error)
}

type bySize struct{}

// BySize partitions records by byte size.
func BySize() Reducer { return bySize{} }

func (bySize) Name() string { return "size" }
func (bySize) Costly() bool { return false }

func (bySize) Key(_ context.Context, rec m.FileRecord) (string, error) {
	return strconv.FormatInt(rec.Size, 10), nil
}

type byDevice struct{}

// ByDevice partitions records by device so every group can be hardlinked.
func ByDevice() Reducer { return byDevice{} }

func (byDevice) Name() string { return "device" }
func (byDevice) Costly() bool { return false }

func (byDevice) Key(_ context.Context, rec m.FileRecord) (string, error) {
	return strconv.FormatUint(rec.ID.Dev, 10), nil
}

type byRelativePath struct{}

// ByRelativePath partitions records by their path relative to their root.
func ByRelativePath() Reducer { return byRelativePath{} }

func (byRelativePath) Name() string { return "relative-path" }
func (byRelativePath) Costly() bool { return false }

func (byRelativePath) Key(_ context.Context, rec m.FileRecord) (string, error) {
	return string(rec.RelPath), nil
}

type byFullHash struct {
	fs     adapter.FileSystem
	digest m.Digest
}

// ByFullHash partitions records by a digest of their whole content.
func ByFullHash(fs adapter.FileSystem, digest m.Digest) Reducer {
	return &byFullHash{fs: fs, digest: digest}
}

func (r *byFullHash) Name() string { return "hash:" + string(r.digest) }
func (r *byFullHash) Costly() bool { return true }

func (r *byFullHash) Key(ctx context.Context, rec m.FileRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum, err := r.fs.HashFile(rec.Path, r.digest)
	if err != nil {
		return "", &HashError{Path: rec.Path, Err: err}
	}

	return sum, nil
}

type byFastHash struct {
	fs adapter.FileSystem
}

// ByFastHash partitions records by FastHashWindow bytes read at the middle of
// the file, hex encoded. It is a weak pre-filter; collisions are settled by
// the matcher. Its keys are shorter than any digest, so the two kinds never
// collide inside an adaptive stage.
func ByFastHash(fs adapter.FileSystem) Reducer {
	return &byFastHash{fs: fs}
}

func (r *byFastHash) Name() string { return "fasthash" }
func (r *byFastHash) Costly() bool { return true }

func (r *byFastHash) Key(ctx context.Context, rec m.FileRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sample, err := r.fs.ReadAt(rec.Path, rec.Size/2, FastHashWindow)
	if err != nil {
		return "", &HashError{Path: rec.Path, Err: err}
	}

	return hex.EncodeToString(sample), nil
}

type byAdaptiveHash struct {
	full      Reducer
	fast      Reducer
	threshold int64
	digest    m.Digest
}

// ByAdaptiveHash uses the full digest below threshold bytes and the midpoint
// sample from threshold upwards.
func ByAdaptiveHash(fs adapter.FileSystem, digest m.Digest, threshold int64) Reducer {
	return &byAdaptiveHash{
		full:      ByFullHash(fs, digest),
		fast:      ByFastHash(fs),
		threshold: threshold,
		digest:    digest,
	}
}

func (r *byAdaptiveHash) Name() string {
	return fmt.Sprintf("smarthash:%s/%d", r.digest, r.threshold)
}

func (r *byAdaptiveHash) Costly() bool { return true }

func (r *byAdaptiveHash) Key(ctx context.Context, rec m.FileRecord) (string, error) {
	if rec.Size < r.threshold {
		return r.full.Key(ctx, rec)
	}

	return r.fast.Key(ctx, rec)
}
