// Package pathindex maps directory prefixes to values with a segment trie.
package pathindex

import (
	"go.trai.ch/dedup/internal/core/domain"
)

// Match is the result of a successful Lookup.
type Match[V any] struct {
	// Value is the value stored at the deepest matching directory.
	Value V
	// Prefix is the matching directory.
	Prefix string
	// Depth is the number of path segments Prefix spans.
	Depth int
}

type node[V any] struct {
	children map[domain.InternedString]*node[V]
	value    V
	terminal bool
}

// Index is a trie over path segments. Values sit only on nodes that end an
// inserted path, so a lookup never matches on part of a segment.
//
// Index is not safe for concurrent writes. Concurrent lookups are safe once
// all inserts are done.
type Index[V any] struct {
	root *node[V]
	size int
}

// New creates an empty Index.
func New[V any]() *Index[V] {
	return &Index[V]{root: &node[V]{}}
}

// Len returns the number of inserted paths.
func (x *Index[V]) Len() int {
	return x.size
}

// Insert stores v at path, replacing any value already there.
func (x *Index[V]) Insert(path string, v V) {
	n := x.root
	for _, seg := range domain.NewInternedSegments(domain.SplitPath(path)) {
		if n.children == nil {
			n.children = make(map[domain.InternedString]*node[V])
		}
		child, ok := n.children[seg]
		if !ok {
			child = &node[V]{}
			n.children[seg] = child
		}
		n = child
	}
	if !n.terminal {
		x.size++
	}
	n.value = v
	n.terminal = true
}

// Lookup returns the value of the deepest inserted directory that is path
// itself or one of its ancestors.
func (x *Index[V]) Lookup(path string) (Match[V], bool) {
	segs := domain.SplitPath(path)

	var (
		best  *node[V]
		depth int
	)
	n := x.root
	for i, seg := range segs {
		child, ok := n.children[domain.NewInternedString(seg)]
		if !ok {
			break
		}
		n = child
		if n.terminal {
			best = n
			depth = i + 1
		}
	}

	if best == nil {
		return Match[V]{}, false
	}
	return Match[V]{
		Value:  best.value,
		Prefix: segs[:depth].String(),
		Depth:  depth,
	}, true
}

// Build indexes every non-canonical member of sets under the canonical
// directory of its key.
func Build(sets domain.DuplicateSets, mapping domain.CanonicalMapping) *Index[string] {
	idx := New[string]()
	for _, key := range sets.Keys() {
		winner, ok := mapping[key]
		if !ok {
			continue
		}
		for _, member := range sets[key] {
			if member == winner {
				continue
			}
			idx.Insert(member, winner)
		}
	}
	return idx
}

// BuildMembers indexes every member of sets under its package key.
func BuildMembers(sets domain.DuplicateSets) *Index[domain.PackageKey] {
	idx := New[domain.PackageKey]()
	for _, key := range sets.Keys() {
		for _, member := range sets[key] {
			idx.Insert(member, key)
		}
	}
	return idx
}
