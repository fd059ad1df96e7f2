package domain

import "strings"

// PackageKey identifies a package by name and version, formatted "name@version".
// Scoped packages keep their scope: "@scope/name@1.0.0".
type PackageKey string

// NewPackageKey formats a PackageKey from a name and version.
func NewPackageKey(name, version string) PackageKey {
	return PackageKey(name + "@" + version)
}

// String returns the key as a plain string.
func (k PackageKey) String() string {
	return string(k)
}

// Name returns the package name part of the key.
func (k PackageKey) Name() string {
	s := string(k)
	if i := strings.LastIndex(s, "@"); i > 0 {
		return s[:i]
	}
	return s
}

// Version returns the version part of the key.
func (k PackageKey) Version() string {
	s := string(k)
	if i := strings.LastIndex(s, "@"); i > 0 {
		return s[i+1:]
	}
	return ""
}

// Manifest is a decoded package.json.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`

	// Raw holds the complete decoded document, used for full equality checks.
	Raw map[string]any `json:"-"`
}

// Valid reports whether the manifest takes part in duplicate detection.
// A manifest needs a name, a version and a dependencies object (which may be empty).
func (m *Manifest) Valid() bool {
	return m != nil && m.Name != "" && m.Version != "" && m.Dependencies != nil
}

// Key returns the manifest's PackageKey.
func (m *Manifest) Key() PackageKey {
	return NewPackageKey(m.Name, m.Version)
}

// PackageIdentity is the name and version declared by the manifest nearest to a path.
type PackageIdentity struct {
	Name    string
	Version string
	// Dir is the directory holding the manifest.
	Dir string
}

// SameAs compares two identities by name, and by version too when strict is set.
func (id PackageIdentity) SameAs(other PackageIdentity, strict bool) bool {
	if id.Name != other.Name {
		return false
	}
	return !strict || id.Version == other.Version
}
