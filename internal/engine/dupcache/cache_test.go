package dupcache_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/cas"
	"go.trai.ch/dedup/internal/adapters/fs"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/core/ports/mocks"
	"go.trai.ch/dedup/internal/engine/dupcache"
	"go.uber.org/mock/gomock"
)

var sampleSets = domain.DuplicateSets{
	"a@1.0.0": {"/r/node_modules/x/node_modules/a", "/r/node_modules/y/node_modules/a"},
}

type fixture struct {
	root    string
	scanner *mocks.MockManifestScanner
	cache   *dupcache.Cache
	opts    dupcache.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "yarn.lock"), []byte("a@1.0.0\n"), 0o600))

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	scanner := mocks.NewMockManifestScanner(ctrl)
	return &fixture{
		root:    root,
		scanner: scanner,
		cache:   dupcache.New(scanner, cas.NewStore(), fs.NewHasher(), fs.NewPatchLister(), log),
		opts: dupcache.Options{
			RootDir:      root,
			CacheDir:     filepath.Join(root, ".dedup", "cache"),
			PatchesDir:   "patches",
			LockfileName: "yarn.lock",
		},
	}
}

func TestCache_ScansOncePerFingerprint(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil).Times(1)

	first, cached, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, sampleSets, first)

	second, cached, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, sampleSets, second)
}

func TestCache_LockfileChangeInvalidates(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil).Times(2)

	_, _, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(f.root, "yarn.lock"), []byte("a@1.0.1\n"), 0o600))

	_, cached, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestCache_PatchSetChangeInvalidates(t *testing.T) {
	f := newFixture(t)

	var excludedOnSecondScan mapset.Set[domain.PackageKey]
	gomock.InOrder(
		f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil),
		f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, excluded mapset.Set[domain.PackageKey]) (domain.DuplicateSets, error) {
				excludedOnSecondScan = excluded
				return domain.DuplicateSets{}, nil
			}),
	)

	_, _, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)

	patches := filepath.Join(f.root, "patches")
	require.NoError(t, os.MkdirAll(patches, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(patches, "a+1.0.0.patch"), nil, 0o600))

	sets, cached, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Empty(t, sets)
	assert.True(t, excludedOnSecondScan.Contains("a@1.0.0"))
}

func TestCache_Disabled(t *testing.T) {
	f := newFixture(t)
	f.opts.CacheDir = ""
	f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil).Times(2)

	for range 2 {
		_, cached, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
		require.NoError(t, err)
		assert.False(t, cached)
	}

	_, err := os.Stat(filepath.Join(f.root, ".dedup"))
	assert.True(t, os.IsNotExist(err))
}

func TestCache_MissingLockfileIsFatal(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Remove(filepath.Join(f.root, "yarn.lock")))

	_, _, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockfileReadFailed.Error())
}

func TestCache_CorruptEntryIsFatal(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil).Times(1)

	_, _, err := f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.NoError(t, err)

	entries, err := os.ReadDir(f.opts.CacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(f.opts.CacheDir, entries[0].Name()), []byte("{"), 0o600))

	_, _, err = f.cache.GetDuplicateSets(context.Background(), f.opts)
	require.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestCache_LogsFingerprintToVertex(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().Scan(gomock.Any(), f.root, gomock.Any()).Return(sampleSets, nil)

	vertex := mocks.NewMockVertex(gomock.NewController(t))
	vertex.EXPECT().Log(domain.LogLevelDebug, gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "fingerprint ")
	})).Times(1)

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	_, _, err := f.cache.GetDuplicateSets(ctx, f.opts)
	require.NoError(t, err)
}
