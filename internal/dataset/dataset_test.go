package dataset

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratelab/packgen/internal/generator"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "instances.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	state, err := generator.NewToyGenerator().GenerateSolution(0)
	require.NoError(t, err)

	id, err := store.Put(ctx, state)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestGetUnknownID(t *testing.T) {
	store := openTempStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestListNewestFirst(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	state := generator.NewToyGenerator().Generate(0)

	first, err := store.Put(ctx, state)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := store.Put(ctx, state)
	require.NoError(t, err)

	metas, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, second, metas[0].ID)
	assert.Equal(t, first, metas[1].ID)

	assert.Equal(t, 20, metas[0].NumItems)
	assert.Equal(t, generator.TwentyFootDims, metas[0].ContainerDims)
	assert.False(t, metas[0].CreatedAt.IsZero())
}

func TestListLimit(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	state := generator.NewToyGenerator().Generate(0)

	for i := 0; i < 5; i++ {
		_, err := store.Put(ctx, state)
		require.NoError(t, err)
	}

	metas, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, metas, 3)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPutRecordsSeed(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	state := generator.NewToyGenerator().Generate(0)
	state.Seed = 987654321

	id, err := store.Put(ctx, state)
	require.NoError(t, err)

	metas, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, metas[0].ID, id)
	assert.Equal(t, uint64(987654321), metas[0].Seed)
}
