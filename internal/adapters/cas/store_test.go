package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/cas"
	"go.trai.ch/dedup/internal/core/domain"
)

func TestEntryName(t *testing.T) {
	assert.Equal(t, "duplicates-00000000deadbeef.1.json", cas.EntryName("00000000deadbeef"))
}

func TestStore_PutAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	store := cas.NewStore()

	sets := domain.DuplicateSets{
		"a@1.0.0": {"/r/node_modules/x/node_modules/a", "/r/node_modules/y/node_modules/a"},
	}
	require.NoError(t, store.Put(dir, "fp", sets))

	got, ok, err := store.Get(dir, "fp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sets, got)
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, cas.NewStore().Put(dir, "fp", domain.DuplicateSets{}))

	got, ok, err := cas.NewStore().Get(dir, "fp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)

	_, err = os.Stat(filepath.Join(dir, cas.EntryName("fp")))
	require.NoError(t, err)
}

func TestStore_Miss(t *testing.T) {
	got, ok, err := cas.NewStore().Get(t.TempDir(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cas.EntryName("fp")), []byte("{not json"), 0o600))

	_, _, err := cas.NewStore().Get(dir, "fp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheCorrupt))
}
