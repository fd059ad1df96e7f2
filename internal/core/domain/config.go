package domain

// Config holds the settings for a dedup run. Paths are absolute once loaded.
type Config struct {
	Root       string
	// Lockfile is the package manager's lockfile, e.g. yarn.lock.
	Lockfile   string
	CacheDir   string
	PatchesDir string
	// LockFile is dedup's own lock of canonical winners.
	LockFile   string

	MainFields     []string
	Extensions     []string
	StrictIdentity bool
}

// DefaultMainFields are the manifest fields consulted, in order, for a package entry point.
func DefaultMainFields() []string {
	return []string{"browser", "module", "main"}
}

// DefaultExtensions are tried, in order, when a request names a file without extension.
func DefaultExtensions() []string {
	return []string{".js", ".mjs", ".cjs", ".json"}
}
