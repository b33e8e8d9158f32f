package artifact

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "run/model.json", []byte(`{"slope":1}`)))

		data, err := store.Get(ctx, "run/model.json")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"slope":1}`), data)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "run/model.json", []byte("v2")))

		data, err := store.Get(ctx, "run/model.json")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "run/fit.png", []byte{0x89}))
		require.NoError(t, store.Put(ctx, "other/dataset.csv", []byte("x,y")))

		names, err := store.List(ctx, "run/")
		require.NoError(t, err)
		assert.Equal(t, []string{"run/fit.png", "run/model.json"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "run/model.json"))

		_, err := store.Get(ctx, "run/model.json")
		require.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing artifact is not an error.
		require.NoError(t, store.Delete(ctx, "run/model.json"))
	})
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStoreContract(t, NewLocalStore(t.TempDir()))
}

func TestCompressed(t *testing.T) {
	ctx := context.Background()

	compressible := bytes.Repeat([]byte("0123456789"), 1000)
	incompressible := []byte{1} // too small to compress

	for _, tc := range []struct {
		name string
		typ  Compression
	}{
		{name: "LZ4", typ: CompressionLZ4},
		{name: "ZSTD", typ: CompressionZSTD},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inner := NewMemoryStore()
			store := NewCompressed(inner, tc.typ)

			require.NoError(t, store.Put(ctx, "big", compressible))
			require.NoError(t, store.Put(ctx, "tiny", incompressible))

			got, err := store.Get(ctx, "big")
			require.NoError(t, err)
			assert.Equal(t, compressible, got)

			got, err = store.Get(ctx, "tiny")
			require.NoError(t, err)
			assert.Equal(t, incompressible, got)

			// The stored payload is actually smaller than the original.
			raw, err := inner.Get(ctx, "big")
			require.NoError(t, err)
			assert.Less(t, len(raw), len(compressible))
		})
	}

	t.Run("RejectsTruncatedPayload", func(t *testing.T) {
		inner := NewMemoryStore()
		require.NoError(t, inner.Put(ctx, "bad", []byte{1, 2, 3}))

		_, err := NewCompressed(inner, CompressionLZ4).Get(ctx, "bad")
		require.Error(t, err)
	})
}

func TestThrottled(t *testing.T) {
	ctx := context.Background()
	store := NewThrottled(NewMemoryStore(), 1<<20)

	payload := bytes.Repeat([]byte("ab"), 512)
	require.NoError(t, store.Put(ctx, "model", payload))

	got, err := store.Get(ctx, "model")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"model"}, names)

	require.NoError(t, store.Delete(ctx, "model"))
}
