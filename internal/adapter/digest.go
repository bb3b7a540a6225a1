package adapter

import (
	"crypto/md5" //nolint:gosec // md5 is offered for inventory compatibility, not security.
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// NewHash returns a fresh hash.Hash for the named digest.
func NewHash(digest m.Digest) (hash.Hash, error) {
	switch digest {
	case m.DigestBlake3:
		return blake3.New(), nil
	case m.DigestSHA256:
		return sha256.New(), nil
	case m.DigestMD5:
		return md5.New(), nil //nolint:gosec
	case m.DigestXXHash:
		return xxhash.New(), nil
	case m.DigestNone:
		return nil, fmt.Errorf("digest %q cannot hash content", digest)
	}

	return nil, fmt.Errorf("unknown digest %q", digest)
}
