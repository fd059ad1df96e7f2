// Package selector chooses the canonical directory of each duplicate set.
package selector

import (
	"slices"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/syncmap"
)

// Selector picks winners for one build. A winner recorded in the previous
// lock is kept as long as it is still a member of its set, so the canonical
// directory of a package only moves when the install layout forces it to.
//
// Selector is safe for concurrent use.
type Selector struct {
	previous domain.CanonicalMapping
	claimed  syncmap.Map[domain.PackageKey, string]
}

// New creates a Selector seeded with the previous build's winners.
func New(previous domain.CanonicalMapping) *Selector {
	return &Selector{previous: previous.Clone()}
}

// Select chooses a winner for every set up front: the previous winner if it is
// still a member, otherwise the first member. It returns the mapping and the
// lock that records it.
func (s *Selector) Select(sets domain.DuplicateSets) (domain.CanonicalMapping, domain.CanonicalMapping) {
	mapping := make(domain.CanonicalMapping, len(sets))
	for _, key := range sets.Keys() {
		members := sets[key]
		if len(members) == 0 {
			continue
		}
		if prev, ok := s.previousWinner(key, members); ok {
			mapping[key] = prev
			continue
		}
		mapping[key] = members[0]
	}
	return mapping, mapping.Clone()
}

// Claim returns the winner of key at the time encountered, one of its members,
// is resolved. The previous winner takes priority; otherwise the first member
// claimed in this build wins, which means the first encounter of a set never
// needs rewriting. Each key is recorded in the lock exactly once.
func (s *Selector) Claim(key domain.PackageKey, encountered string, members []string) string {
	if prev, ok := s.previousWinner(key, members); ok {
		winner, _ := s.claimed.LoadOrStore(key, prev)
		return winner
	}
	winner, _ := s.claimed.LoadOrStore(key, encountered)
	return winner
}

// Lock returns the winners claimed so far.
func (s *Selector) Lock() domain.CanonicalMapping {
	return domain.CanonicalMapping(s.claimed.ToMap())
}

func (s *Selector) previousWinner(key domain.PackageKey, members []string) (string, bool) {
	prev, ok := s.previous[key]
	if !ok || !slices.Contains(members, prev) {
		return "", false
	}
	return prev, true
}
