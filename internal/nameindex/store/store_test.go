package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcore/astrocore/internal/database"
	"github.com/starcore/astrocore/internal/nameindex"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	db := database.NewInMemoryDB()
	s := New(db)
	ctx := context.Background()

	idx := nameindex.New()
	idx.Add(677, "Sirius", false)
	idx.Add(677, "Dog Star", false)
	idx.AddLocalized(677, "Sirio")
	idx.Add(91262, "Vega", false)

	require.NoError(t, s.Save(ctx, idx, []int{677, 91262}))

	exists, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	restored, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Sirius", restored.LookupByIndex(677))
	assert.Equal(t, "Vega", restored.LookupByIndex(91262))

	i, err := restored.LookupByName("sirio", true)
	require.NoError(t, err)
	assert.Equal(t, 677, i)
}

func TestLoadWithNoSnapshot(t *testing.T) {
	db := database.NewInMemoryDB()
	s := New(db)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := database.NewInMemoryDB()
	s := New(db)
	ctx := context.Background()

	idx := nameindex.New()
	idx.Add(1, "Polaris", false)
	require.NoError(t, s.Save(ctx, idx, []int{1}))

	require.NoError(t, s.Delete(ctx))

	exists, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}
