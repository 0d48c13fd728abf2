package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyroxene.dev/launcher/internal/core/testfixtures"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o644))
}

func TestDiscover_RootOrderThenDirectoryOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(first, "b.desktop"))
	touch(t, filepath.Join(first, "a.desktop"))
	touch(t, filepath.Join(second, "0.desktop"))

	d := NewFileSystemDiscovery([]string{first, second}, nil, nil)
	paths := d.Discover(context.Background())

	assert.Equal(t, []string{
		filepath.Join(first, "a.desktop"),
		filepath.Join(first, "b.desktop"),
		filepath.Join(second, "0.desktop"),
	}, paths)
}

func TestDiscover_SkipsNonDescriptors(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "app.desktop"))
	touch(t, filepath.Join(dir, "mimeinfo.cache"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.desktop"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "kde"), 0o755))
	touch(t, filepath.Join(dir, "kde", "deep.desktop"))

	paths := NewFileSystemDiscovery([]string{dir}, nil, nil).Discover(context.Background())

	assert.Equal(t, []string{filepath.Join(dir, "app.desktop")}, paths)
}

func TestDiscover_FollowsSymlinks(t *testing.T) {
	dir, target := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(target, "real.desktop"))
	require.NoError(t, os.Symlink(filepath.Join(target, "real.desktop"), filepath.Join(dir, "link.desktop")))
	require.NoError(t, os.Symlink(filepath.Join(target, "gone.desktop"), filepath.Join(dir, "dangling.desktop")))

	paths := NewFileSystemDiscovery([]string{dir}, nil, nil).Discover(context.Background())

	assert.Equal(t, []string{filepath.Join(dir, "link.desktop")}, paths)
}

func TestDiscover_MissingRootIsQuiet(t *testing.T) {
	rep := &testfixtures.RecordingReporter{}
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.desktop"))

	paths := NewFileSystemDiscovery([]string{filepath.Join(dir, "absent"), dir}, rep, nil).Discover(context.Background())

	assert.Len(t, paths, 1)
	assert.Empty(t, rep.Directories)
}

func TestDiscover_UnreadableRootIsReported(t *testing.T) {
	rep := &testfixtures.RecordingReporter{}
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file")
	touch(t, notADir)
	touch(t, filepath.Join(dir, "a.desktop"))

	paths := NewFileSystemDiscovery([]string{notADir, dir}, rep, nil).Discover(context.Background())

	assert.Equal(t, []string{filepath.Join(dir, "a.desktop")}, paths)
	assert.Equal(t, []string{notADir}, rep.Directories)
}

func TestDiscover_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.desktop"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, NewFileSystemDiscovery([]string{dir}, nil, nil).Discover(ctx))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/applications"), ExpandPath("~/.local/share/applications"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/usr/share/applications", ExpandPath("/usr/share/applications"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
}

func TestOSSource_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.desktop")
	touch(t, path)

	data, err := OSSource{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Desktop Entry]\n", string(data))

	_, err = OSSource{}.ReadFile(path + ".missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
