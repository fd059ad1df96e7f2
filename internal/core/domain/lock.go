package domain

// LockVersion is the current on-disk format version of the dedup lock.
const LockVersion = 2

// Lock is the persisted choice of canonical directories, tagged with the
// fingerprint of the dependency lockfile it was produced from.
type Lock struct {
	Version      int              `json:"version"`
	LockfileHash string           `json:"yarnLockHash"`
	Resolve      CanonicalMapping `json:"resolve"`
}

// NewLock creates a lock at the current version.
func NewLock(lockfileHash string, resolve CanonicalMapping) *Lock {
	if resolve == nil {
		resolve = CanonicalMapping{}
	}
	return &Lock{
		Version:      LockVersion,
		LockfileHash: lockfileHash,
		Resolve:      resolve,
	}
}
