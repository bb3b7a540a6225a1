package domain

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// tempDir returns a fresh directory with symlinks in its own path resolved,
// so that normalized paths compare equal to the ones tests build.
func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func writeFile(t *testing.T, path string, data []byte) m.Path {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return m.Path(path)
}

func setModTime(t *testing.T, path m.Path, mtime time.Time) {
	t.Helper()

	require.NoError(t, os.Chtimes(string(path), mtime, mtime))
}

// content returns size bytes filled with a pattern derived from seed.
func content(size int, seed byte) []byte {
	data := bytes.Repeat([]byte{seed}, size)
	for i := range data {
		data[i] ^= byte(i % 251)
	}

	return data
}

func fileID(t *testing.T, path m.Path) m.FileID {
	t.Helper()

	info, err := os.Stat(string(path))
	require.NoError(t, err)

	id, _ := adapter.NewLocalFileSystem().FileID(info)

	return id
}

func statRecord(t *testing.T, root, path m.Path) m.FileRecord {
	t.Helper()

	info, err := os.Stat(string(path))
	require.NoError(t, err)

	id, nlink := adapter.NewLocalFileSystem().FileID(info)

	return m.FileRecord{
		Path:    path,
		Root:    root,
		ID:      id,
		Nlink:   nlink,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

func requireHardlinked(t *testing.T, paths ...m.Path) {
	t.Helper()

	require.NotEmpty(t, paths)

	first, err := os.Stat(string(paths[0]))
	require.NoError(t, err)

	for _, p := range paths[1:] {
		info, err := os.Stat(string(p))
		require.NoError(t, err)
		require.Truef(t, os.SameFile(first, info), "%s is not a hardlink of %s", p, paths[0])
	}
}

func rec(path string, dev, ino uint64) m.FileRecord {
	return m.FileRecord{Path: m.Path(path), ID: m.FileID{Dev: dev, Ino: ino}, Nlink: 1, Size: 1}
}
