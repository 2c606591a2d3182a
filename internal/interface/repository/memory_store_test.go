package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Set(ctx, "airports/DEL/flights/6E213", map[string]string{"airline": "IndiGo"})
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, store.Get(ctx, "airports/DEL/flights/6E213", &got))
	assert.Equal(t, "IndiGo", got["airline"])
}

func TestMemoryStoreGetAbsentLeavesValueUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var got map[string]string
	require.NoError(t, store.Get(ctx, "airports/DEL/flights/XX000", &got))
	assert.Nil(t, got)
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a/b", map[string]string{"x": "1", "y": "2"}))
	require.NoError(t, store.Update(ctx, "a/b", map[string]interface{}{"y": "3", "z": "4"}))

	var got map[string]string
	require.NoError(t, store.Get(ctx, "a/b", &got))
	assert.Equal(t, map[string]string{"x": "1", "y": "3", "z": "4"}, got)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a/b", "v"))
	require.NoError(t, store.Delete(ctx, "a/b"))
	require.NoError(t, store.Delete(ctx, "a/b"))
	require.NoError(t, store.Delete(ctx, "never/existed"))

	var got *string
	require.NoError(t, store.Get(ctx, "a/b", &got))
	assert.Nil(t, got)
}

func TestMemoryStorePushGeneratesUniqueKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	k1, err := store.Push(ctx, "notifications/ABC123", map[string]string{"type": "CANCELLED"})
	require.NoError(t, err)
	k2, err := store.Push(ctx, "notifications/ABC123", map[string]string{"type": "DELAYED"})
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)

	var got map[string]map[string]string
	require.NoError(t, store.Get(ctx, "notifications/ABC123", &got))
	assert.Len(t, got, 2)
}
