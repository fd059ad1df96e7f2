package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/syncmap"
	"go.trai.ch/zerr"
)

var (
	_ ports.ManifestReader = (*ManifestReader)(nil)
	_ ports.IdentityReader = (*Identities)(nil)
)

// ManifestReader decodes package.json files.
type ManifestReader struct{}

// NewManifestReader creates a new ManifestReader.
func NewManifestReader() *ManifestReader {
	return &ManifestReader{}
}

// Read decodes the manifest at path. The full document is kept in Raw;
// name, version and dependencies are lifted out when they have the expected types.
func (r *ManifestReader) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path comes from the dependency tree walk
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if raw == nil {
		return nil, zerr.With(domain.ErrManifestParseFailed, "path", path)
	}

	m := &domain.Manifest{Raw: raw}
	m.Name, _ = raw["name"].(string)
	m.Version, _ = raw["version"].(string)

	if deps, ok := raw["dependencies"].(map[string]any); ok {
		m.Dependencies = make(map[string]string, len(deps))
		for name, spec := range deps {
			if s, ok := spec.(string); ok {
				m.Dependencies[name] = s
			}
		}
	}

	return m, nil
}

// Identities finds the package a path belongs to by walking up to the
// nearest manifest that declares a name. Lookups are memoised per directory.
type Identities struct {
	reader ports.ManifestReader
	memo   syncmap.Map[string, identityResult]
}

type identityResult struct {
	id  domain.PackageIdentity
	err error
}

// NewIdentities creates an Identities reader backed by reader.
func NewIdentities(reader ports.ManifestReader) *Identities {
	return &Identities{reader: reader}
}

// Identity returns the identity of the package containing path.
// path may name a file or a directory.
func (i *Identities) Identity(path string) (domain.PackageIdentity, error) {
	dir := filepath.Clean(path)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	return i.lookup(dir, path)
}

func (i *Identities) lookup(dir, origin string) (domain.PackageIdentity, error) {
	if res, ok := i.memo.Load(dir); ok {
		return res.id, res.err
	}

	id, err := i.find(dir, origin)
	res, _ := i.memo.LoadOrStore(dir, identityResult{id: id, err: err})
	return res.id, res.err
}

func (i *Identities) find(dir, origin string) (domain.PackageIdentity, error) {
	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		m, err := i.reader.Read(manifestPath)
		if err != nil {
			return domain.PackageIdentity{}, err
		}
		if m.Name != "" {
			return domain.PackageIdentity{Name: m.Name, Version: m.Version, Dir: dir}, nil
		}
	}

	parent := filepath.Dir(dir)
	if parent == dir {
		return domain.PackageIdentity{}, zerr.With(domain.ErrManifestNotFound, "path", origin)
	}
	return i.lookup(parent, origin)
}
