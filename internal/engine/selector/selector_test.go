package selector_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/engine/selector"
)

var sets = domain.DuplicateSets{
	"pkg@1.0.0": {"/r/node_modules/a/node_modules/pkg", "/r/node_modules/b/node_modules/pkg"},
	"lib@2.0.0": {"/r/node_modules/a/node_modules/lib", "/r/node_modules/c/node_modules/lib"},
}

func TestSelector_Select(t *testing.T) {
	t.Run("first member without previous lock", func(t *testing.T) {
		mapping, lock := selector.New(nil).Select(sets)

		want := domain.CanonicalMapping{
			"pkg@1.0.0": "/r/node_modules/a/node_modules/pkg",
			"lib@2.0.0": "/r/node_modules/a/node_modules/lib",
		}
		assert.Equal(t, want, mapping)
		assert.Equal(t, want, lock)
	})

	t.Run("previous winner kept while still a member", func(t *testing.T) {
		previous := domain.CanonicalMapping{
			"pkg@1.0.0": "/r/node_modules/b/node_modules/pkg",
			"lib@2.0.0": "/r/node_modules/gone/node_modules/lib",
		}

		mapping, _ := selector.New(previous).Select(sets)

		assert.Equal(t, "/r/node_modules/b/node_modules/pkg", mapping["pkg@1.0.0"])
		assert.Equal(t, "/r/node_modules/a/node_modules/lib", mapping["lib@2.0.0"])
	})

	t.Run("stable across repeated builds", func(t *testing.T) {
		first, lock := selector.New(nil).Select(sets)
		second, _ := selector.New(lock).Select(sets)
		assert.Equal(t, first, second)
	})
}

func TestSelector_Claim(t *testing.T) {
	members := sets["pkg@1.0.0"]

	t.Run("first encounter wins", func(t *testing.T) {
		s := selector.New(nil)

		assert.Equal(t, members[1], s.Claim("pkg@1.0.0", members[1], members))
		assert.Equal(t, members[1], s.Claim("pkg@1.0.0", members[0], members))
		assert.Equal(t, domain.CanonicalMapping{"pkg@1.0.0": members[1]}, s.Lock())
	})

	t.Run("previous winner takes priority", func(t *testing.T) {
		s := selector.New(domain.CanonicalMapping{"pkg@1.0.0": members[0]})

		assert.Equal(t, members[0], s.Claim("pkg@1.0.0", members[1], members))
		assert.Equal(t, domain.CanonicalMapping{"pkg@1.0.0": members[0]}, s.Lock())
	})

	t.Run("stale previous winner is ignored", func(t *testing.T) {
		s := selector.New(domain.CanonicalMapping{"pkg@1.0.0": "/r/node_modules/gone/node_modules/pkg"})

		assert.Equal(t, members[1], s.Claim("pkg@1.0.0", members[1], members))
	})

	t.Run("lock only holds encountered keys", func(t *testing.T) {
		s := selector.New(nil)
		s.Claim("pkg@1.0.0", members[0], members)

		assert.NotContains(t, s.Lock(), domain.PackageKey("lib@2.0.0"))
	})

	t.Run("concurrent claims agree", func(t *testing.T) {
		s := selector.New(nil)
		results := make([]string, 32)

		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = s.Claim("pkg@1.0.0", members[i%2], members)
			}()
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, results[0], r)
		}
		assert.Equal(t, domain.CanonicalMapping{"pkg@1.0.0": results[0]}, s.Lock())
	})
}
