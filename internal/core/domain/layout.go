package domain

import "path/filepath"

const (
	// DependencyDirName is the name of the directory packages are installed into.
	DependencyDirName = "node_modules"

	// ManifestFileName is the name of a package manifest file.
	ManifestFileName = "package.json"

	// DefaultLockfileName is the name of the package manager's dependency lockfile.
	DefaultLockfileName = "yarn.lock"

	// DefaultPatchesDirName is the name of the directory holding package patches.
	DefaultPatchesDirName = "patches"

	// DefaultDedupLockName is the name of the persisted winner lock.
	DefaultDedupLockName = "dedup.lock"

	// DedupDirName is the name of the internal workspace directory.
	DedupDirName = ".dedup"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "dedup.yaml"

	// PatchFileExt is the extension of patch files.
	PatchFileExt = ".patch"

	// LoaderMarker prefixes loader pseudo-requests that are never rewritten.
	LoaderMarker = "!"

	// DuplicatesCachePrefix is the file name prefix of duplicate-set cache entries.
	DuplicatesCachePrefix = "duplicates-"

	// CacheBust is bumped whenever the cached duplicate-set format or scanning rules change.
	CacheBust = 1

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default duplicate-set cache directory.
// It joins .dedup and cache.
func DefaultCachePath() string {
	return filepath.Join(DedupDirName, CacheDirName)
}
