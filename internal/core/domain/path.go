package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Segments is a path split on the OS path separator.
// Absolute paths start with an empty segment, so joining the segments
// reproduces the original cleaned path.
type Segments []string

// SplitPath cleans p and splits it into segments.
func SplitPath(p string) Segments {
	return strings.Split(filepath.Clean(p), string(filepath.Separator))
}

// String joins the segments back into a path.
func (s Segments) String() string {
	return strings.Join(s, string(filepath.Separator))
}

// Count returns how many segments equal seg.
func (s Segments) Count(seg string) int {
	n := 0
	for _, v := range s {
		if v == seg {
			n++
		}
	}
	return n
}

// IndexFrom returns the index of the first segment equal to seg at or after from, or -1.
func (s Segments) IndexFrom(seg string, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return -1
	}
	if i := slices.Index(s[from:], seg); i >= 0 {
		return from + i
	}
	return -1
}

// HasPrefix reports whether prefix matches the leading segments of s exactly.
func (s Segments) HasPrefix(prefix Segments) bool {
	if len(prefix) > len(s) {
		return false
	}
	return slices.Equal(s[:len(prefix)], prefix)
}

// ReplacePrefix returns a new path made of with followed by the segments of s after the first n.
func (s Segments) ReplacePrefix(n int, with Segments) Segments {
	out := make(Segments, 0, len(with)+len(s)-n)
	out = append(out, with...)
	return append(out, s[n:]...)
}

// ContainsDependencyDir reports whether p has a node_modules segment.
func ContainsDependencyDir(p string) bool {
	return SplitPath(p).Count(DependencyDirName) > 0
}

// IsTransitiveInstall reports whether p lies inside a package's own node_modules,
// i.e. the path crosses more than one node_modules segment.
func IsTransitiveInstall(p string) bool {
	return SplitPath(p).Count(DependencyDirName) > 1
}
