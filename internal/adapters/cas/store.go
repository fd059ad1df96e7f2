// Package cas implements fingerprint-addressed storage of duplicate sets.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DuplicateSetStore = (*Store)(nil)

// Store implements ports.DuplicateSetStore with one JSON file per fingerprint.
type Store struct{}

// NewStore creates a new duplicate-set store.
func NewStore() *Store {
	return &Store{}
}

// EntryName returns the file name of the entry for fingerprint.
func EntryName(fingerprint string) string {
	return fmt.Sprintf("%s%s.%d.json", domain.DuplicatesCachePrefix, fingerprint, domain.CacheBust)
}

// Get retrieves the duplicate sets stored under fingerprint in dir.
func (s *Store) Get(dir, fingerprint string) (domain.DuplicateSets, bool, error) {
	path := filepath.Join(dir, EntryName(fingerprint))

	//nolint:gosec // Path is built from the configured cache dir and a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	var sets domain.DuplicateSets
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, false, errors.Join(domain.ErrCacheCorrupt, zerr.With(zerr.Wrap(err, "invalid cache entry"), "path", path))
	}
	if sets == nil {
		sets = domain.DuplicateSets{}
	}

	return sets, true, nil
}

// Put stores sets under fingerprint in dir, creating dir if needed.
func (s *Store) Put(dir, fingerprint string, sets domain.DuplicateSets) error {
	path := filepath.Join(dir, EntryName(fingerprint))

	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is built from the configured cache dir and a hex fingerprint
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	return nil
}
