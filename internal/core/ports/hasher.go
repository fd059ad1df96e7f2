package ports

import "go.trai.ch/dedup/internal/core/domain"

// Fingerprinter computes content fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// HashFile returns the fingerprint of a file's content.
	HashFile(path string) (string, error)

	// Fingerprint returns the fingerprint of a lockfile's content combined with
	// the set of patched package keys.
	Fingerprint(lockfilePath string, patched []domain.PackageKey) (string, error)
}
