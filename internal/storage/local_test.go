package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("image-bytes")

	require.NoError(t, store.Save(ctx, "products/a.png", bytes.NewReader(content), "image/png"))

	exists, err := store.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, "products/a.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	reader, err := store.Get(ctx, "products/a.png")
	require.NoError(t, err)
	read, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, content, read)

	require.NoError(t, store.Delete(ctx, "products/a.png"))
	exists, err = store.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, store.Delete(ctx, "products/a.png"))
}
