package config

// Dedupfile represents the structure of the dedup.yaml configuration file.
// CacheDir is a pointer so an explicit empty value, which disables caching,
// differs from an absent key.
type Dedupfile struct {
	Root           string   `yaml:"root"`
	Lockfile       string   `yaml:"lockfile"`
	CacheDir       *string  `yaml:"cacheDir"`
	PatchesDir     string   `yaml:"patchesDir"`
	LockFile       string   `yaml:"lockFile"`
	MainFields     []string `yaml:"mainFields"`
	Extensions     []string `yaml:"extensions"`
	StrictIdentity bool     `yaml:"strictIdentity"`
}
