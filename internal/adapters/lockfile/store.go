// Package lockfile reads and writes the dedup lock.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore.
//
// Two on-disk formats are understood. The legacy format is a bare object
// mapping package keys to directories and carries no fingerprint. The
// versioned format wraps the mapping with the lockfile fingerprint it was
// produced from.
type Store struct{}

// NewStore creates a new lock store.
func NewStore() *Store {
	return &Store{}
}

type versionProbe struct {
	Version *int `json:"version"`
}

// Read returns the lock at path. A missing file yields an empty lock with no fingerprint.
func (s *Store) Read(path string) (*domain.Lock, error) {
	//nolint:gosec // Path is provided by trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLock("", nil), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	var probe versionProbe
	if err := json.Unmarshal(data, &probe); err == nil && probe.Version != nil {
		return s.readVersioned(path, data, *probe.Version)
	}

	var legacy domain.CanonicalMapping
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParseFailed.Error()), "path", path)
	}
	return domain.NewLock("", legacy), nil
}

func (s *Store) readVersioned(path string, data []byte, version int) (*domain.Lock, error) {
	if version > domain.LockVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedLockVersion, "version", version), "path", path)
	}

	var lock domain.Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParseFailed.Error()), "path", path)
	}
	if lock.Resolve == nil {
		lock.Resolve = domain.CanonicalMapping{}
	}
	return &lock, nil
}

// Write persists lock unless its fingerprint equals previousHash.
// The file is indented JSON with a trailing newline.
func (s *Store) Write(path string, lock *domain.Lock, previousHash string) (bool, error) {
	if lock.LockfileHash == previousHash {
		return false, nil
	}

	out := *lock
	out.Version = domain.LockVersion
	if out.Resolve == nil {
		out.Resolve = domain.CanonicalMapping{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is provided by trusted configuration
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}

	return true, nil
}
