package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileReadFailed is returned when the dependency lockfile cannot be read for fingerprinting.
	ErrLockfileReadFailed = zerr.New("failed to read dependency lockfile")

	// ErrPatchesReadFailed is returned when an existing patches directory cannot be listed.
	ErrPatchesReadFailed = zerr.New("failed to read patches directory")

	// ErrScanFailed is returned when the dependency tree cannot be walked.
	ErrScanFailed = zerr.New("failed to scan dependency tree")

	// ErrCacheReadFailed is returned when a duplicate-set cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read duplicate-set cache")

	// ErrCacheCorrupt is returned when a duplicate-set cache entry cannot be decoded.
	ErrCacheCorrupt = zerr.New("duplicate-set cache entry is corrupt")

	// ErrCacheWriteFailed is returned when a duplicate-set cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write duplicate-set cache")

	// ErrLockReadFailed is returned when the dedup lock cannot be read.
	ErrLockReadFailed = zerr.New("failed to read dedup lock")

	// ErrLockParseFailed is returned when the dedup lock is neither a legacy nor a versioned lock.
	ErrLockParseFailed = zerr.New("failed to parse dedup lock")

	// ErrLockWriteFailed is returned when the dedup lock cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write dedup lock")

	// ErrUnsupportedLockVersion is returned when the dedup lock has a newer version than supported.
	ErrUnsupportedLockVersion = zerr.New("unsupported dedup lock version")

	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when a package manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestNotFound is returned when no manifest exists above a path.
	ErrManifestNotFound = zerr.New("no package manifest found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrSessionClosed is returned when a build session is used after End.
	ErrSessionClosed = zerr.New("build session already ended")

	// ErrNoRequests is returned when the resolve command receives no requests.
	ErrNoRequests = zerr.New("no requests specified")
)
