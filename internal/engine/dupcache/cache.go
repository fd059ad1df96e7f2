// Package dupcache memoises duplicate-set scans by dependency fingerprint.
package dupcache

import (
	"context"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
)

// Options locate the inputs of a duplicate-set lookup.
type Options struct {
	// RootDir is the project root holding node_modules.
	RootDir string
	// CacheDir holds cache entries. Empty disables caching.
	CacheDir string
	// PatchesDir holds package patches; relative paths resolve against RootDir.
	PatchesDir string
	// LockfileName is the dependency lockfile; relative paths resolve against RootDir.
	LockfileName string
}

// Cache serves duplicate sets from the store when the lockfile and patch set
// are unchanged, and scans otherwise.
type Cache struct {
	scanner ports.ManifestScanner
	store   ports.DuplicateSetStore
	hasher  ports.Fingerprinter
	patches ports.PatchLister
	logger  ports.Logger
}

// New creates a new Cache.
func New(
	scanner ports.ManifestScanner,
	store ports.DuplicateSetStore,
	hasher ports.Fingerprinter,
	patches ports.PatchLister,
	log ports.Logger,
) *Cache {
	return &Cache{
		scanner: scanner,
		store:   store,
		hasher:  hasher,
		patches: patches,
		logger:  log,
	}
}

// GetDuplicateSets returns the duplicate sets for opts and whether they were served from the cache.
// Patched packages never appear in the result.
func (c *Cache) GetDuplicateSets(ctx context.Context, opts Options) (domain.DuplicateSets, bool, error) {
	patched, err := c.patches.ListPatched(resolve(opts.RootDir, opts.PatchesDir))
	if err != nil {
		return nil, false, err
	}
	excluded := mapset.NewSet(patched...)

	if opts.CacheDir == "" {
		sets, err := c.scanner.Scan(ctx, opts.RootDir, excluded)
		return sets, false, err
	}

	fingerprint, err := c.hasher.Fingerprint(resolve(opts.RootDir, opts.LockfileName), excluded.ToSlice())
	if err != nil {
		return nil, false, err
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, "fingerprint "+fingerprint)
	}

	sets, ok, err := c.store.Get(opts.CacheDir, fingerprint)
	if err != nil {
		return nil, false, err
	}
	if ok {
		c.logger.Debug("duplicate sets served from cache " + fingerprint)
		return sets, true, nil
	}

	sets, err = c.scanner.Scan(ctx, opts.RootDir, excluded)
	if err != nil {
		return nil, false, err
	}

	if err := c.store.Put(opts.CacheDir, fingerprint, sets); err != nil {
		return nil, false, err
	}
	c.logger.Debug("duplicate sets cached as " + fingerprint)

	return sets, false, nil
}

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
