package model

import (
	"fmt"
	"strings"
)

// MergeStrategy selects which member of a duplicate group keeps its data.
type MergeStrategy string

const (
	// MergeMaxLinks keeps the file already shared by the most group members.
	MergeMaxLinks MergeStrategy = "max"
	// MergeOrder keeps the first file under the highest priority root.
	MergeOrder MergeStrategy = "order"
)

// MergeStrategies lists the accepted merge strategies.
var MergeStrategies = []MergeStrategy{MergeMaxLinks, MergeOrder}

// ParseMergeStrategy converts a flag value to a MergeStrategy.
func ParseMergeStrategy(value string) (MergeStrategy, error) {
	s := MergeStrategy(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range MergeStrategies {
		if s == known {
			return s, nil
		}
	}

	return "", fmt.Errorf("unknown merge strategy %q (want one of %s)", value, joinNames(MergeStrategies))
}

// MtimePolicy selects the modification time applied to the surviving inode.
type MtimePolicy string

const (
	// MtimeOrder takes the mtime of the first file under the highest priority root.
	MtimeOrder MtimePolicy = "order"
	// MtimeNewest takes the latest mtime across the group.
	MtimeNewest MtimePolicy = "newest"
	// MtimeMerge is an alias of MtimeNewest.
	MtimeMerge MtimePolicy = "merge"
)

// MtimePolicies lists the accepted timestamp policies.
var MtimePolicies = []MtimePolicy{MtimeOrder, MtimeNewest, MtimeMerge}

// ParseMtimePolicy converts a flag value to an MtimePolicy. The merge alias is
// folded into newest.
func ParseMtimePolicy(value string) (MtimePolicy, error) {
	p := MtimePolicy(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range MtimePolicies {
		if p != known {
			continue
		}

		if p == MtimeMerge {
			return MtimeNewest, nil
		}

		return p, nil
	}

	return "", fmt.Errorf("unknown mtime policy %q (want one of %s)", value, joinNames(MtimePolicies))
}

// Digest names a content digest algorithm.
type Digest string

// Available digests. DigestNone is only meaningful for inventories.
const (
	DigestNone   Digest = "none"
	DigestBlake3 Digest = "blake3"
	DigestSHA256 Digest = "sha256"
	DigestMD5    Digest = "md5"
	DigestXXHash Digest = "xxhash"
)

// Digests lists the digests usable for content grouping.
var Digests = []Digest{DigestBlake3, DigestSHA256, DigestMD5, DigestXXHash}

// ParseDigest converts a flag value to a Digest. allowNone permits "none".
func ParseDigest(value string, allowNone bool) (Digest, error) {
	d := Digest(strings.ToLower(strings.TrimSpace(value)))
	if allowNone && d == DigestNone {
		return d, nil
	}

	for _, known := range Digests {
		if d == known {
			return d, nil
		}
	}

	return "", fmt.Errorf("unknown digest %q (want one of %s)", value, joinNames(Digests))
}

func joinNames[T ~string](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}

	return strings.Join(names, ", ")
}
