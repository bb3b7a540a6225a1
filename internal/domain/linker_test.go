package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"linkdup.dev/pkg/linkdup/internal/adapter"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

func requireNoTempLinks(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, e := range entries {
		assert.NotContains(t, e.Name(), tempLinkInfix)
	}
}

func TestLinkApplier_Apply(t *testing.T) {
	dir := tempDir(t)
	data := content(5000, 9)
	a := writeFile(t, filepath.Join(dir, "a"), data)
	b := writeFile(t, filepath.Join(dir, "b"), data)
	c := writeFile(t, filepath.Join(dir, "sub", "c"), data)

	members := m.Group{statRecord(t, m.Path(dir), a), statRecord(t, m.Path(dir), b), statRecord(t, m.Path(dir), c)}
	mtime := time.Unix(1_600_000_000, 123_456_789)

	stats, err := NewLinkApplier(adapter.NewLocalFileSystem()).Apply(context.Background(), m.DuplicateGroup{
		Members: members,
		Origin:  members[0],
		ModTime: mtime,
	})

	require.NoError(t, err)
	assert.Equal(t, m.MergeStats{Groups: 1, Relinked: 2, ReclaimedBytes: 10000}, stats)

	requireHardlinked(t, a, b, c)

	info, err := os.Stat(string(a))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime %s, want %s", info.ModTime(), mtime)

	got, err := os.ReadFile(string(c))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	requireNoTempLinks(t, dir)
	requireNoTempLinks(t, filepath.Join(dir, "sub"))
}

func TestLinkApplier_CountsExistingLinks(t *testing.T) {
	dir := tempDir(t)
	data := content(100, 1)
	a := writeFile(t, filepath.Join(dir, "a"), data)
	b := m.Path(filepath.Join(dir, "b"))
	require.NoError(t, os.Link(string(a), string(b)))
	c := writeFile(t, filepath.Join(dir, "c"), data)

	// d shares its inode with e, which is outside the group.
	d := writeFile(t, filepath.Join(dir, "d"), data)
	require.NoError(t, os.Link(string(d), filepath.Join(dir, "e")))

	members := m.Group{
		statRecord(t, m.Path(dir), a),
		statRecord(t, m.Path(dir), b),
		statRecord(t, m.Path(dir), c),
		statRecord(t, m.Path(dir), d),
	}

	stats, err := NewLinkApplier(adapter.NewLocalFileSystem()).Apply(context.Background(), m.DuplicateGroup{
		Members: members,
		Origin:  members[0],
		ModTime: members[0].ModTime,
	})

	require.NoError(t, err)
	assert.Equal(t, m.MergeStats{Groups: 1, Relinked: 2, AlreadyLinked: 1, ReclaimedBytes: 100}, stats)
	requireHardlinked(t, a, b, c, d)
}

func TestLinkApplier_LinkUnsupported(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/a", []byte("data"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/b", []byte("data"), 0o644))

	members := m.Group{{Path: "/a", Size: 4}, {Path: "/b", Size: 4}}

	stats, err := NewLinkApplier(adapter.NewFileSystem(memFs)).Apply(context.Background(), m.DuplicateGroup{
		Members: members,
		Origin:  members[0],
		ModTime: time.Unix(1_600_000_000, 0),
	})

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "link", linkErr.Op)
	assert.Equal(t, m.Path("/b"), linkErr.Path)
	assert.ErrorIs(t, err, adapter.ErrLinkUnsupported)
	assert.Zero(t, stats.Relinked)

	got, readErr := afero.ReadFile(memFs, "/b")
	require.NoError(t, readErr)
	assert.Equal(t, []byte("data"), got)
}

func TestLinkApplier_MemberChangedSinceScan(t *testing.T) {
	tests := []struct {
		name   string
		change func(t *testing.T, path m.Path, dir string)
	}{
		{
			name: "rewritten",
			change: func(t *testing.T, path m.Path, _ string) {
				require.NoError(t, os.WriteFile(string(path), content(20, 1), 0o644))
			},
		},
		{
			name: "replaced by symlink",
			change: func(t *testing.T, path m.Path, dir string) {
				other := writeFile(t, filepath.Join(dir, "other"), content(10, 1))
				require.NoError(t, os.Remove(string(path)))
				require.NoError(t, os.Symlink(string(other), string(path)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tempDir(t)
			a := writeFile(t, filepath.Join(dir, "a"), content(10, 1))
			b := writeFile(t, filepath.Join(dir, "b"), content(10, 1))

			members := m.Group{statRecord(t, m.Path(dir), a), statRecord(t, m.Path(dir), b)}
			tt.change(t, b, dir)

			stats, err := NewLinkApplier(adapter.NewLocalFileSystem()).Apply(context.Background(), m.DuplicateGroup{
				Members: members,
				Origin:  members[0],
				ModTime: members[0].ModTime,
			})

			var linkErr *LinkError
			require.ErrorAs(t, err, &linkErr)
			assert.Equal(t, "verify", linkErr.Op)
			assert.Equal(t, b, linkErr.Path)
			require.ErrorIs(t, err, ErrMemberChanged)
			assert.Zero(t, stats.Relinked)

			info, statErr := os.Lstat(string(b))
			require.NoError(t, statErr)
			assert.False(t, os.SameFile(info, mustStat(t, a)))
			requireNoTempLinks(t, dir)
		})
	}
}

func mustStat(t *testing.T, path m.Path) os.FileInfo {
	t.Helper()

	info, err := os.Stat(string(path))
	require.NoError(t, err)

	return info
}

type failingRename struct {
	*adapter.LocalFileSystem
}

var errRename = errors.New("rename refused")

func (failingRename) Rename(_, _ m.Path) error { return errRename }

func TestLinkApplier_RenameFailureRemovesTempLink(t *testing.T) {
	dir := tempDir(t)
	a := writeFile(t, filepath.Join(dir, "a"), content(10, 1))
	b := writeFile(t, filepath.Join(dir, "b"), content(10, 1))

	members := m.Group{statRecord(t, m.Path(dir), a), statRecord(t, m.Path(dir), b)}

	_, err := NewLinkApplier(failingRename{adapter.NewLocalFileSystem()}).Apply(context.Background(), m.DuplicateGroup{
		Members: members,
		Origin:  members[0],
		ModTime: members[0].ModTime,
	})

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "rename", linkErr.Op)
	require.ErrorIs(t, err, errRename)

	requireNoTempLinks(t, dir)
	assert.NotEqual(t, fileID(t, a), fileID(t, b))
}

func TestLinkApplier_ChtimesFailure(t *testing.T) {
	dir := tempDir(t)
	missing := m.FileRecord{Path: m.Path(filepath.Join(dir, "gone"))}

	_, err := NewLinkApplier(adapter.NewLocalFileSystem()).Apply(context.Background(), m.DuplicateGroup{
		Members: m.Group{missing},
		Origin:  missing,
		ModTime: time.Now(),
	})

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "chtimes", linkErr.Op)
	assert.True(t, strings.HasPrefix(err.Error(), "chtimes "))
}

func TestIsTempLink(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "temporary link", file: ".data.bin" + tempLinkInfix + id, want: true},
		{name: "no leading dot", file: "data.bin" + tempLinkInfix + id, want: false},
		{name: "no base name", file: tempLinkInfix + id, want: false},
		{name: "suffix is not a uuid", file: ".data.bin" + tempLinkInfix + "copy", want: false},
		{name: "plain file", file: "data.bin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTempLink(tt.file))
		})
	}
}
