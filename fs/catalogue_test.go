package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Catalogue Document
// The catalogue is persisted as one YAML document replaced wholesale.

func TestCatalogueStore_RoundTrip(t *testing.T) {
	t.Parallel()

	// Given a store in a data directory that does not exist yet
	ctx := context.Background()
	store := fs.NewCatalogueStore(filepath.Join(t.TempDir(), "data", fs.CatalogueFile))
	catalogue := archwiki.Catalogue{
		"Audio":   {"ALSA", "PipeWire", "ALSA"},
		"Package": {"Pacman"},
		"Empty":   {},
	}

	// When I save and load the catalogue
	require.NoError(t, store.Save(ctx, catalogue))
	got, err := store.Load(ctx)

	// Then it round-trips, including duplicates and order
	require.NoError(t, err)
	assert.Equal(t, []string{"ALSA", "PipeWire", "ALSA"}, got["Audio"])
	assert.Equal(t, []string{"Pacman"}, got["Package"])
	assert.Empty(t, got["Empty"])
	assert.Len(t, got, 3)
}

func TestCatalogueStore_SaveReplacesWholesale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fs.NewCatalogueStore(filepath.Join(t.TempDir(), fs.CatalogueFile))
	require.NoError(t, store.Save(ctx, archwiki.Catalogue{"Old": {"A"}}))

	require.NoError(t, store.Save(ctx, archwiki.Catalogue{"New": {"B"}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, archwiki.Catalogue{"New": {"B"}}, got)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be cleaned up")
}

func TestCatalogueStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing document is empty", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCatalogueStore(filepath.Join(t.TempDir(), fs.CatalogueFile))

		got, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("fails with serialize error on bad document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), fs.CatalogueFile)
		require.NoError(t, os.WriteFile(path, []byte("- not\n- a mapping\n"), 0644))

		_, err := fs.NewCatalogueStore(path).Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, archwiki.ESERIALIZE, archwiki.ErrorCode(err))
	})

	t.Run("fails with io error when path is a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCatalogueStore(t.TempDir()).Load(context.Background())

		assert.Equal(t, archwiki.EIO, archwiki.ErrorCode(err))
	})
}

func TestCatalogueStore_SyncedAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fs.NewCatalogueStore(filepath.Join(t.TempDir(), fs.CatalogueFile))

	before, err := store.SyncedAt(ctx)
	require.NoError(t, err)
	assert.True(t, before.IsZero())

	require.NoError(t, store.Save(ctx, archwiki.Catalogue{"A": {"B"}}))

	after, err := store.SyncedAt(ctx)
	require.NoError(t, err)
	assert.False(t, after.IsZero())
}
