// Package scanner finds version-identical duplicate installs in a dependency tree.
package scanner

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ManifestScanner = (*Scanner)(nil)

// Scanner implements ports.ManifestScanner.
type Scanner struct {
	finder      ports.ManifestFinder
	reader      ports.ManifestReader
	logger      ports.Logger
	concurrency int
}

// New creates a new Scanner.
func New(finder ports.ManifestFinder, reader ports.ManifestReader, log ports.Logger) *Scanner {
	return &Scanner{
		finder:      finder,
		reader:      reader,
		logger:      log,
		concurrency: runtime.NumCPU(),
	}
}

// Scan walks root/node_modules and returns the duplicate sets found there.
//
// Only transitive installs (manifests below more than one node_modules
// segment) are considered. Manifests that cannot be read, or that lack a
// name, version or dependencies object, are skipped. Members of a group are
// compared against the first member only, so a group whose first member
// differs from the rest keeps just that first member and is dropped.
func (s *Scanner) Scan(
	ctx context.Context,
	root string,
	excluded mapset.Set[domain.PackageKey],
) (domain.DuplicateSets, error) {
	paths, err := s.finder.FindManifests(ctx, root)
	if err != nil {
		return nil, err
	}

	paths = slices.DeleteFunc(paths, func(p string) bool {
		return !domain.IsTransitiveInstall(p)
	})

	manifests, err := s.readAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	groups := make(map[domain.PackageKey][]int)
	var order []domain.PackageKey
	for i, m := range manifests {
		if !m.Valid() {
			continue
		}
		key := m.Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	sets := make(domain.DuplicateSets)
	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		if excluded != nil && excluded.Contains(key) {
			continue
		}

		first := manifests[members[0]]
		dirs := make([]string, 0, len(members))
		for _, i := range members {
			if cmp.Equal(first.Raw, manifests[i].Raw) {
				dirs = append(dirs, filepath.Dir(paths[i]))
			}
		}
		if len(dirs) < 2 {
			continue
		}

		slices.Sort(dirs)
		sets[key] = dirs
	}

	return sets, nil
}

// readAll decodes the manifests concurrently. The result is index-aligned with
// paths; unreadable manifests are nil.
func (s *Scanner) readAll(ctx context.Context, paths []string) ([]*domain.Manifest, error) {
	manifests := make([]*domain.Manifest, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := s.reader.Read(p)
			if err != nil {
				s.logger.Debug("skipping manifest: " + err.Error())
				return nil
			}
			manifests[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrScanFailed.Error())
	}

	return manifests, nil
}
