package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	err = store.PutObject(ctx, "uploads/20250310/orders.csv", []byte("a,b\n1,2\n"), "text/csv")
	require.NoError(t, err)

	data, err := store.GetObject(ctx, "uploads/20250310/orders.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("a,b\n1,2\n"), data)
}

func TestLocalStorageList(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.PutObject(ctx, "uploads/a.csv", []byte("x"), "text/csv"))
	require.NoError(t, store.PutObject(ctx, "uploads/b.csv", []byte("xy"), "text/csv"))
	require.NoError(t, store.PutObject(ctx, "other/c.csv", []byte("xyz"), "text/csv"))

	objects, err := store.ListObjects(ctx, "uploads/")
	require.NoError(t, err)
	require.Len(t, objects, 2)

	keys := []string{objects[0].Key, objects[1].Key}
	assert.ElementsMatch(t, []string{"uploads/a.csv", "uploads/b.csv"}, keys)
}

func TestLocalStorageGetMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetObject(context.Background(), "nope.csv")
	assert.Error(t, err)
}
