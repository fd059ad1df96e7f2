package ports

import "go.trai.ch/dedup/internal/core/domain"

// DuplicateSetStore persists scanner output keyed by fingerprint.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DuplicateSetStore interface {
	// Get returns the sets stored under fingerprint in dir.
	// Returns nil, false, nil if no entry exists.
	Get(dir, fingerprint string) (domain.DuplicateSets, bool, error)

	// Put stores sets under fingerprint in dir.
	Put(dir, fingerprint string, sets domain.DuplicateSets) error
}

// LockStore reads and writes the dedup lock.
type LockStore interface {
	// Read returns the lock at path. A missing file yields an empty lock.
	Read(path string) (*domain.Lock, error)

	// Write persists lock unless its fingerprint equals previousHash.
	// It reports whether the file was written.
	Write(path string, lock *domain.Lock, previousHash string) (bool, error)
}
