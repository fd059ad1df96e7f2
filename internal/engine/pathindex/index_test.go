package pathindex_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/engine/pathindex"
)

func p(parts ...string) string {
	return filepath.Join(append([]string{string(filepath.Separator)}, parts...)...)
}

func TestIndex_Lookup(t *testing.T) {
	idx := pathindex.New[string]()
	idx.Insert(p("r", "node_modules", "radio-button"), "button")
	idx.Insert(p("r", "node_modules", "a", "node_modules", "pkg"), "outer")
	idx.Insert(p("r", "node_modules", "a", "node_modules", "pkg", "node_modules", "dep"), "inner")

	tests := []struct {
		name   string
		path   string
		want   string
		prefix string
		ok     bool
	}{
		{
			name:   "exact directory",
			path:   p("r", "node_modules", "radio-button"),
			want:   "button",
			prefix: p("r", "node_modules", "radio-button"),
			ok:     true,
		},
		{
			name:   "file below directory",
			path:   p("r", "node_modules", "radio-button", "lib", "index.js"),
			want:   "button",
			prefix: p("r", "node_modules", "radio-button"),
			ok:     true,
		},
		{
			name: "partial segment does not match",
			path: p("r", "node_modules", "radio-button-group", "index.js"),
		},
		{
			name: "ancestor of an entry does not match",
			path: p("r", "node_modules", "a", "index.js"),
		},
		{
			name:   "deepest entry wins",
			path:   p("r", "node_modules", "a", "node_modules", "pkg", "node_modules", "dep", "index.js"),
			want:   "inner",
			prefix: p("r", "node_modules", "a", "node_modules", "pkg", "node_modules", "dep"),
			ok:     true,
		},
		{
			name:   "falls back to shallower entry",
			path:   p("r", "node_modules", "a", "node_modules", "pkg", "node_modules", "other", "index.js"),
			want:   "outer",
			prefix: p("r", "node_modules", "a", "node_modules", "pkg"),
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := idx.Lookup(tt.path)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, m.Value)
			assert.Equal(t, tt.prefix, m.Prefix)
			assert.Len(t, domain.SplitPath(tt.prefix), m.Depth)
		})
	}
}

func TestIndex_InsertReplaces(t *testing.T) {
	idx := pathindex.New[int]()
	idx.Insert(p("a"), 1)
	idx.Insert(p("a"), 2)
	idx.Insert(p("a", "b"), 3)

	assert.Equal(t, 2, idx.Len())
	m, ok := idx.Lookup(p("a", "c"))
	require.True(t, ok)
	assert.Equal(t, 2, m.Value)
}

func TestBuild(t *testing.T) {
	a := p("r", "node_modules", "a", "node_modules", "pkg")
	b := p("r", "node_modules", "b", "node_modules", "pkg")
	sets := domain.DuplicateSets{"pkg@1.0.0": {a, b}}

	idx := pathindex.Build(sets, domain.CanonicalMapping{"pkg@1.0.0": a})

	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Lookup(filepath.Join(a, "index.js"))
	assert.False(t, ok, "canonical directory must not be rewritten")

	m, ok := idx.Lookup(filepath.Join(b, "index.js"))
	require.True(t, ok)
	assert.Equal(t, a, m.Value)
	assert.Equal(t, b, m.Prefix)
}

func TestBuildMembers(t *testing.T) {
	a := p("r", "node_modules", "a", "node_modules", "pkg")
	b := p("r", "node_modules", "b", "node_modules", "pkg")
	c := p("r", "node_modules", "c", "node_modules", "lib")
	d := p("r", "node_modules", "d", "node_modules", "lib")
	sets := domain.DuplicateSets{
		"pkg@1.0.0": {a, b},
		"lib@2.0.0": {c, d},
	}

	idx := pathindex.BuildMembers(sets)

	assert.Equal(t, 4, idx.Len())
	m, ok := idx.Lookup(filepath.Join(d, "dist", "lib.js"))
	require.True(t, ok)
	assert.Equal(t, domain.PackageKey("lib@2.0.0"), m.Value)
	assert.Equal(t, d, m.Prefix)
}
