package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/hupe1980/matchgo/resource"
)

// ErrRescanThrottled is returned by Dir.Rescan when the resource controller
// denies a rescan slot.
var ErrRescanThrottled = errors.New("rescan throttled")

// Dir is a Provider that lists files under a root directory. The listing is
// taken once at construction; Rescan refreshes it. A .gitignore at the root
// is honored and .git directories are always skipped. Dot-files are listed:
// their visibility is a scoring concern, not a scanning concern.
type Dir struct {
	root        string
	includeDirs bool
	res         *resource.Controller

	mu    sync.RWMutex
	paths []string
}

// DirOption configures a Dir provider.
type DirOption func(*Dir)

// WithIncludeDirs lists directories as candidates in addition to files.
func WithIncludeDirs() DirOption {
	return func(d *Dir) {
		d.includeDirs = true
	}
}

// WithResourceController throttles Rescan through the given controller.
func WithResourceController(res *resource.Controller) DirOption {
	return func(d *Dir) {
		d.res = res
	}
}

// NewDir scans root and returns a Dir provider over the result.
func NewDir(root string, optFns ...DirOption) (*Dir, error) {
	d := &Dir{root: root}
	for _, fn := range optFns {
		if fn != nil {
			fn(d)
		}
	}

	paths, err := d.scan()
	if err != nil {
		return nil, err
	}
	d.paths = paths

	return d, nil
}

// Paths implements Provider. Rescan replaces the slice rather than mutating
// it, so an in-flight query keeps a stable view.
func (d *Dir) Paths() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.paths
}

// Root returns the scanned root directory.
func (d *Dir) Root() string {
	return d.root
}

// Rescan walks the root again and swaps in the fresh listing.
func (d *Dir) Rescan(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.res != nil && !d.res.AllowRescan() {
		return ErrRescanThrottled
	}

	paths, err := d.scan()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.paths = paths
	d.mu.Unlock()

	return nil
}

func (d *Dir) scan() ([]string, error) {
	var matcher gitignore.IgnoreMatcher
	ignorePath := filepath.Join(d.root, ".gitignore")
	if _, err := os.Stat(ignorePath); err == nil {
		matcher, _ = gitignore.NewGitIgnore(ignorePath)
	}

	var paths []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries, keep partial results
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() && entry.Name() == ".git" {
			return filepath.SkipDir
		}

		if matcher != nil && matcher.Match(path, entry.IsDir()) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() && !d.includeDirs {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
