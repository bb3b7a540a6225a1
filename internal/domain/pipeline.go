package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

const (
	// DefaultMinGroup is the bucket size at which a reduction stage emits a
	// bucket. At 1 a bucket takes its place in the output order from its first
	// member, so later stages see buckets in discovery order.
	DefaultMinGroup = 1
	// DefaultMinMatch is the size of the smallest confirmed duplicate group.
	DefaultMinMatch = 2
)

// Group buckets items by key. Buckets keep the first-seen order of their
// members; a bucket is appended to groups the moment its length reaches
// minSize, and items arriving later still join it without re-emitting it.
// grouped counts the items held by emitted buckets.
func Group[T any, K comparable](items []T, key func(T) K, minSize int) (total, grouped int, groups [][]T) {
	index := make(map[K]int)

	var (
		buckets [][]T
		emitted []int
	)

	for _, item := range items {
		total++

		k := key(item)

		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, nil)
		}

		buckets[i] = append(buckets[i], item)
		grouped += admit(len(buckets[i]), minSize, &emitted, i)
	}

	return total, grouped, collect(buckets, emitted)
}

// Select splits items into sub-buckets of equal items. Each item is compared
// with the first member of every existing sub-bucket only, and joins the first
// one it equals. Emission follows the same rule as Group.
func Select[T any](items []T, equal func(a, b T) (bool, error), minSize int) (total, grouped int, groups [][]T, err error) {
	var (
		buckets [][]T
		emitted []int
	)

	for _, item := range items {
		total++

		target := -1

		for i, bucket := range buckets {
			ok, cmpErr := equal(item, bucket[0])
			if cmpErr != nil {
				return total, grouped, nil, cmpErr
			}

			if ok {
				target = i
				break
			}
		}

		if target < 0 {
			target = len(buckets)
			buckets = append(buckets, nil)
		}

		buckets[target] = append(buckets[target], item)
		grouped += admit(len(buckets[target]), minSize, &emitted, target)
	}

	return total, grouped, collect(buckets, emitted), nil
}

func admit(length, minSize int, emitted *[]int, bucket int) int {
	minSize = max(minSize, 1)

	switch {
	case length == minSize:
		*emitted = append(*emitted, bucket)
		return length
	case length > minSize:
		return 1
	}

	return 0
}

func collect[T any](buckets [][]T, emitted []int) [][]T {
	groups := make([][]T, 0, len(emitted))
	for _, i := range emitted {
		groups = append(groups, buckets[i])
	}

	return groups
}

// StageObserver receives the statistics of every finished stage.
type StageObserver func(stats m.StageStats)

// PipelineOptions selects the stages of a Pipeline.
type PipelineOptions struct {
	Relative           bool
	SmartHash          bool
	SmartHashThreshold int64
	Digest             m.Digest
	Workers            int
}

// Pipeline reduces records to confirmed duplicate groups: every reducer runs
// inside each bucket left by the previous one, then the comparator splits the
// final buckets into groups of identical files. Buckets with fewer than
// MinMatch members are not forwarded.
type Pipeline struct {
	Reducers   []Reducer
	Comparator Comparator
	MinGroup   int
	MinMatch   int
	Workers    int
	Observer   StageObserver
}

// NewPipeline builds the stage list for opts: relative path (optional), size,
// device, content hash, then byte comparison.
func NewPipeline(fs adapter.FileSystem, opts PipelineOptions) *Pipeline {
	var reducers []Reducer

	if opts.Relative {
		reducers = append(reducers, ByRelativePath())
	}

	reducers = append(reducers, BySize(), ByDevice())

	if opts.SmartHash {
		reducers = append(reducers, ByAdaptiveHash(fs, opts.Digest, opts.SmartHashThreshold))
	} else {
		reducers = append(reducers, ByFullHash(fs, opts.Digest))
	}

	return &Pipeline{
		Reducers:   reducers,
		Comparator: ByteExact(fs),
		MinGroup:   DefaultMinGroup,
		MinMatch:   DefaultMinMatch,
		Workers:    max(opts.Workers, 1),
	}
}

// Run executes every stage over records and returns the confirmed groups in
// emission order together with per-stage statistics.
func (p *Pipeline) Run(ctx context.Context, records []m.FileRecord) ([]m.Group, []m.StageStats, error) {
	var buckets []m.Group
	if len(records) > 0 {
		buckets = []m.Group{records}
	}

	stats := make([]m.StageStats, 0, len(p.Reducers)+1)

	for _, reducer := range p.Reducers {
		next, st, err := p.reduce(ctx, reducer, buckets)
		if err != nil {
			return nil, stats, fmt.Errorf("stage %s: %w", reducer.Name(), err)
		}

		stats = append(stats, p.observe(st))
		buckets = next
	}

	groups, st, err := p.match(ctx, buckets)
	if err != nil {
		return nil, stats, fmt.Errorf("stage %s: %w", p.Comparator.Name(), err)
	}

	stats = append(stats, p.observe(st))

	return groups, stats, nil
}

func (p *Pipeline) observe(st m.StageStats) m.StageStats {
	slog.Info("Stage finished", "stage", st.Name, "input", st.Input, "grouped", st.Grouped, "groups", st.Groups, "elapsed", st.Elapsed)

	if p.Observer != nil {
		p.Observer(st)
	}

	return st
}

type keyedRecord struct {
	rec m.FileRecord
	key string
}

func (p *Pipeline) reduce(ctx context.Context, reducer Reducer, buckets []m.Group) ([]m.Group, m.StageStats, error) {
	start := time.Now()
	stats := m.StageStats{Name: reducer.Name()}

	keys, err := p.keys(ctx, reducer, buckets)
	if err != nil {
		return nil, stats, err
	}

	var next []m.Group

	offset := 0

	for _, bucket := range buckets {
		keyed := make([]keyedRecord, len(bucket))
		for i, rec := range bucket {
			keyed[i] = keyedRecord{rec: rec, key: keys[offset+i]}
		}

		offset += len(bucket)

		total, _, groups := Group(keyed, func(k keyedRecord) string { return k.key }, p.MinGroup)
		stats.Input += total

		for _, g := range groups {
			// A bucket smaller than a match can never hold a duplicate.
			if len(g) < p.MinMatch {
				continue
			}

			stats.Grouped += len(g)

			group := make(m.Group, len(g))
			for i, k := range g {
				group[i] = k.rec
			}

			next = append(next, group)
		}
	}

	stats.Groups = len(next)
	stats.Elapsed = time.Since(start)

	return next, stats, nil
}

// keys computes the key of every record, flattened in bucket order.
func (p *Pipeline) keys(ctx context.Context, reducer Reducer, buckets []m.Group) ([]string, error) {
	var flat []m.FileRecord
	for _, bucket := range buckets {
		flat = append(flat, bucket...)
	}

	return computeKeys(ctx, reducer, flat, p.Workers)
}

// computeKeys returns reducer keys aligned with records. Costly keys run on a
// bounded worker pool and are computed once per known file id; results land
// at their scan position so grouping order is unaffected.
func computeKeys(ctx context.Context, reducer Reducer, records []m.FileRecord, workers int) ([]string, error) {
	keys := make([]string, len(records))

	if !reducer.Costly() {
		for i, rec := range records {
			key, err := reducer.Key(ctx, rec)
			if err != nil {
				return nil, err
			}

			keys[i] = key
		}

		return keys, nil
	}

	firstByID := make(map[m.FileID]int)
	aliases := make(map[int]int)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	for i, rec := range records {
		if rec.ID.Known() {
			if first, ok := firstByID[rec.ID]; ok {
				aliases[i] = first
				continue
			}

			firstByID[rec.ID] = i
		}

		index, current := i, rec

		group.Go(func() error {
			key, err := reducer.Key(groupCtx, current)
			if err != nil {
				return err
			}

			keys[index] = key

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, first := range aliases {
		keys[i] = keys[first]
	}

	return keys, nil
}

func (p *Pipeline) match(ctx context.Context, buckets []m.Group) ([]m.Group, m.StageStats, error) {
	start := time.Now()
	stats := m.StageStats{Name: p.Comparator.Name()}

	var confirmed []m.Group

	equal := func(a, b m.FileRecord) (bool, error) {
		return p.Comparator.Equal(ctx, a, b)
	}

	for _, bucket := range buckets {
		total, grouped, groups, err := Select([]m.FileRecord(bucket), equal, p.MinMatch)
		if err != nil {
			return nil, stats, err
		}

		stats.Input += total
		stats.Grouped += grouped

		for _, g := range groups {
			confirmed = append(confirmed, m.Group(g))
		}
	}

	stats.Groups = len(confirmed)
	stats.Elapsed = time.Since(start)

	return confirmed, stats, nil
}
