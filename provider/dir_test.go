package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matchgo/resource"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "sub/b.txt", "b")
	writeFile(t, root, ".hidden", "h")
	writeFile(t, root, ".git/config", "c")
	writeFile(t, root, "ignored.log", "i")
	writeFile(t, root, ".gitignore", "*.log\n")

	d, err := NewDir(root)
	require.NoError(t, err)

	paths := d.Paths()
	assert.Contains(t, paths, "a.txt")
	assert.Contains(t, paths, "sub/b.txt")
	// Dot-files are listed; hiding them is the scorer's job.
	assert.Contains(t, paths, ".hidden")
	assert.Contains(t, paths, ".gitignore")
	// .git and gitignored entries never appear.
	assert.NotContains(t, paths, ".git/config")
	assert.NotContains(t, paths, "ignored.log")
	// Directories are excluded by default.
	assert.NotContains(t, paths, "sub")
}

func TestDirIncludeDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/b.txt", "b")

	d, err := NewDir(root, WithIncludeDirs())
	require.NoError(t, err)

	paths := d.Paths()
	assert.Contains(t, paths, "sub")
	assert.Contains(t, paths, "sub/b.txt")
}

func TestDirRescan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	d, err := NewDir(root)
	require.NoError(t, err)

	before := d.Paths()
	require.Len(t, before, 1)

	writeFile(t, root, "b.txt", "b")
	require.NoError(t, d.Rescan(context.Background()))

	// The new listing is visible, while the earlier snapshot is untouched.
	assert.Len(t, d.Paths(), 2)
	assert.Len(t, before, 1)
}

func TestDirRescanThrottled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	res := resource.NewController(resource.Config{RescanInterval: time.Hour})

	d, err := NewDir(root, WithResourceController(res))
	require.NoError(t, err)

	require.NoError(t, d.Rescan(context.Background()))
	assert.ErrorIs(t, d.Rescan(context.Background()), ErrRescanThrottled)
}

func TestDirRescanCanceledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	d, err := NewDir(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Rescan(ctx), context.Canceled)
}
