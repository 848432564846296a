package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrotech/petrotech/internal/catalog"
)

func TestNewStoreInMemory(t *testing.T) {
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NotNil(t, s)

	err = s.Close()
	assert.NoError(t, err)
}

func TestLoadCatalogEmpty(t *testing.T) {
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = s.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSaveAndLoadCatalog(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	want, err := catalog.Default()
	require.NoError(t, err)

	require.NoError(t, s.SaveCatalog(ctx, want))

	got, err := s.LoadCatalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Categories(), got.Categories())
	assert.Equal(t, want.Tools(), got.Tools(), "order and fields survive a round trip")
	assert.Equal(t, want.Tags(), got.Tags())
	assert.Equal(t, "1.1.0", got.SchemaVersion())
}

func TestSaveCatalogReplaces(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	full, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, full))

	small, err := catalog.New(
		[]catalog.Category{{ID: "hse", Name: "HSE", Icon: catalog.IconShield}},
		[]catalog.Tool{{ID: "phast", Name: "DNV Phast", Category: "hse", Tags: []string{"HSE"}}},
	)
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, small))

	got, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.Len(t, got.Categories(), 1)
	assert.Equal(t, catalog.DefaultSchemaVersion, got.SchemaVersion())

	tool, ok := got.Tool("phast")
	require.True(t, ok)
	assert.Nil(t, tool.Features)
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	c, err := catalog.Default()
	require.NoError(t, err)
	before := time.Now().Add(-time.Second)
	require.NoError(t, s.SaveCatalog(ctx, c))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", snap.SchemaVersion)
	assert.Equal(t, c.Len(), snap.Tools)
	assert.Equal(t, len(c.Categories()), snap.Categories)
	assert.True(t, snap.ImportedAt.After(before))
}

func TestStorePersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	c, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, c))
	require.NoError(t, s.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.Len(), got.Len())
}
