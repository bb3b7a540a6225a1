package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

func TestByteExact(t *testing.T) {
	dir := tempDir(t)

	base := content(adapter.ChunkSize*2+17, 3)
	tail := append([]byte{}, base...)
	tail[len(tail)-1] ^= 0x01

	a := statRecord(t, m.Path(dir), writeFile(t, filepath.Join(dir, "a"), base))
	b := statRecord(t, m.Path(dir), writeFile(t, filepath.Join(dir, "b"), base))
	c := statRecord(t, m.Path(dir), writeFile(t, filepath.Join(dir, "c"), tail))

	cmp := ByteExact(adapter.NewLocalFileSystem())
	assert.Equal(t, "byte-exact", cmp.Name())

	t.Run("identical contents", func(t *testing.T) {
		equal, err := cmp.Equal(context.Background(), a, b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("last byte differs", func(t *testing.T) {
		equal, err := cmp.Equal(context.Background(), a, c)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("different sizes are not read", func(t *testing.T) {
		left := m.FileRecord{Path: "/missing/left", Size: 1}
		right := m.FileRecord{Path: "/missing/right", Size: 2}

		equal, err := cmp.Equal(context.Background(), left, right)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("same file id is not read", func(t *testing.T) {
		id := m.FileID{Dev: 1, Ino: 2}
		left := m.FileRecord{Path: "/missing/left", ID: id, Size: 5}
		right := m.FileRecord{Path: "/missing/right", ID: id, Size: 5}

		equal, err := cmp.Equal(context.Background(), left, right)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("read failure", func(t *testing.T) {
		missing := m.FileRecord{Path: m.Path(filepath.Join(dir, "missing")), Size: a.Size}

		_, err := cmp.Equal(context.Background(), a, missing)

		var cmpErr *CompareError
		require.ErrorAs(t, err, &cmpErr)
		assert.Equal(t, a.Path, cmpErr.Left)
		assert.Equal(t, missing.Path, cmpErr.Right)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := cmp.Equal(ctx, a, b)

		require.ErrorIs(t, err, context.Canceled)
	})
}
