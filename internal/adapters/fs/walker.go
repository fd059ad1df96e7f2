// Package fs provides file system adapters for walking installed packages,
// reading their manifests and fingerprinting inputs.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestFinder = (*Walker)(nil)

// skippedDirs are never descended into.
var skippedDirs = []string{".git", ".jj", ".cache"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping VCS and cache directories
// and anything matching ignores. Walk errors end the sequence and are
// yielded with an empty path.
func (w *Walker) WalkFiles(ctx context.Context, root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// FindManifests returns every package.json under root/node_modules in ascending order.
// A project without node_modules has no manifests.
func (w *Walker) FindManifests(ctx context.Context, root string) ([]string, error) {
	dir := filepath.Join(root, domain.DependencyDirName)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", dir)
	}

	var manifests []string
	for path, err := range w.WalkFiles(ctx, dir, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", dir)
		}
		if filepath.Base(path) == domain.ManifestFileName {
			manifests = append(manifests, path)
		}
	}

	slices.Sort(manifests)
	return manifests, nil
}

// shouldSkipDir checks if an entry should be skipped.
// Returns filepath.SkipDir for skipped directories and nil otherwise.
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}

	name := d.Name()
	if slices.Contains(skippedDirs, name) {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return filepath.SkipDir
		}
	}

	return nil
}
