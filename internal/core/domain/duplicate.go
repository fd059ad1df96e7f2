package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// DuplicateSets maps a package key to the sorted directories holding
// byte-for-byte equivalent installs of it. Every set has at least two members.
type DuplicateSets map[PackageKey][]string

// Keys returns the set keys in ascending order.
func (d DuplicateSets) Keys() []PackageKey {
	return slices.Sorted(maps.Keys(d))
}

// Members returns the number of directories across all sets.
func (d DuplicateSets) Members() int {
	n := 0
	for _, dirs := range d {
		n += len(dirs)
	}
	return n
}

// CanonicalMapping maps a package key to the directory chosen as its canonical install.
type CanonicalMapping map[PackageKey]string

// Clone returns a shallow copy of the mapping. A nil mapping clones to an empty one.
func (m CanonicalMapping) Clone() CanonicalMapping {
	out := make(CanonicalMapping, len(m))
	maps.Copy(out, m)
	return out
}

// Relativize returns a copy with every directory under root made relative to
// it and slash separated. Directories outside root are kept absolute.
func (m CanonicalMapping) Relativize(root string) CanonicalMapping {
	out := make(CanonicalMapping, len(m))
	for k, dir := range m {
		rel, err := filepath.Rel(root, dir)
		if err != nil || !filepath.IsAbs(dir) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			out[k] = dir
			continue
		}
		out[k] = filepath.ToSlash(rel)
	}
	return out
}

// Absolutize returns a copy with every relative directory joined onto root.
func (m CanonicalMapping) Absolutize(root string) CanonicalMapping {
	out := make(CanonicalMapping, len(m))
	for k, dir := range m {
		p := filepath.FromSlash(dir)
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		out[k] = filepath.Clean(p)
	}
	return out
}
