package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/fs"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports/mocks"
	"go.trai.ch/dedup/internal/engine/scanner"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o600))
}

func newScanner(t *testing.T) *scanner.Scanner {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return scanner.New(fs.NewWalker(), fs.NewManifestReader(), log)
}

const manifestA = `{"name":"a","version":"1.0.0","dependencies":{"b":"^2.0.0"}}`

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	nm := filepath.Join(root, "node_modules")

	// Top-level install is not a duplicate candidate.
	writeManifest(t, filepath.Join(nm, "a"), manifestA)
	writeManifest(t, filepath.Join(nm, "y", "node_modules", "a"), manifestA)
	writeManifest(t, filepath.Join(nm, "x", "node_modules", "a"), manifestA)

	// Same name, different version: never merged.
	writeManifest(t, filepath.Join(nm, "z", "node_modules", "a"), `{"name":"a","version":"1.0.1","dependencies":{}}`)

	// Scoped duplicate with an empty dependencies object.
	scoped := `{"name":"@org/c","version":"3.0.0","dependencies":{}}`
	writeManifest(t, filepath.Join(nm, "x", "node_modules", "@org", "c"), scoped)
	writeManifest(t, filepath.Join(nm, "y", "node_modules", "@org", "c"), scoped)

	// Missing dependencies field: ignored.
	writeManifest(t, filepath.Join(nm, "x", "node_modules", "d"), `{"name":"d","version":"1.0.0"}`)
	writeManifest(t, filepath.Join(nm, "y", "node_modules", "d"), `{"name":"d","version":"1.0.0"}`)

	// Malformed manifest: skipped.
	writeManifest(t, filepath.Join(nm, "y", "node_modules", "broken"), `{"name":`)

	sets, err := newScanner(t).Scan(context.Background(), root, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DuplicateSets{
		"a@1.0.0": {
			filepath.Join(nm, "x", "node_modules", "a"),
			filepath.Join(nm, "y", "node_modules", "a"),
		},
		"@org/c@3.0.0": {
			filepath.Join(nm, "x", "node_modules", "@org", "c"),
			filepath.Join(nm, "y", "node_modules", "@org", "c"),
		},
	}, sets)
}

func TestScanner_Scan_Excluded(t *testing.T) {
	root := t.TempDir()
	nm := filepath.Join(root, "node_modules")
	writeManifest(t, filepath.Join(nm, "x", "node_modules", "a"), manifestA)
	writeManifest(t, filepath.Join(nm, "y", "node_modules", "a"), manifestA)

	sets, err := newScanner(t).Scan(context.Background(), root, mapset.NewSet[domain.PackageKey]("a@1.0.0"))
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestScanner_Scan_ManifestEquality(t *testing.T) {
	t.Run("differing member is left out", func(t *testing.T) {
		root := t.TempDir()
		nm := filepath.Join(root, "node_modules")
		writeManifest(t, filepath.Join(nm, "p", "node_modules", "a"), manifestA)
		writeManifest(t, filepath.Join(nm, "q", "node_modules", "a"), manifestA)
		writeManifest(t, filepath.Join(nm, "r", "node_modules", "a"),
			`{"name":"a","version":"1.0.0","dependencies":{"b":"^2.0.0"},"_resolved":"elsewhere"}`)

		sets, err := newScanner(t).Scan(context.Background(), root, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(nm, "p", "node_modules", "a"),
			filepath.Join(nm, "q", "node_modules", "a"),
		}, sets["a@1.0.0"])
	})

	t.Run("members are compared with the first only", func(t *testing.T) {
		root := t.TempDir()
		nm := filepath.Join(root, "node_modules")
		writeManifest(t, filepath.Join(nm, "p", "node_modules", "a"),
			`{"name":"a","version":"1.0.0","dependencies":{"b":"^2.0.0"},"_resolved":"elsewhere"}`)
		writeManifest(t, filepath.Join(nm, "q", "node_modules", "a"), manifestA)
		writeManifest(t, filepath.Join(nm, "r", "node_modules", "a"), manifestA)

		sets, err := newScanner(t).Scan(context.Background(), root, nil)
		require.NoError(t, err)
		assert.NotContains(t, sets, domain.PackageKey("a@1.0.0"))
	})
}

func TestScanner_Scan_NoDependencyDir(t *testing.T) {
	sets, err := newScanner(t).Scan(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestScanner_Scan_FinderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mocks.NewMockManifestFinder(ctrl)
	finder.EXPECT().FindManifests(gomock.Any(), "/root").Return(nil, domain.ErrScanFailed)

	s := scanner.New(finder, mocks.NewMockManifestReader(ctrl), mocks.NewMockLogger(ctrl))
	_, err := s.Scan(context.Background(), "/root", nil)
	require.ErrorIs(t, err, domain.ErrScanFailed)
}
