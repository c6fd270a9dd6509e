package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/podo-rush/internal/store"
)

func backends(t *testing.T) map[string]store.KV {
	t.Helper()

	b, err := store.OpenBadger(filepath.Join(t.TempDir(), "badger"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return map[string]store.KV{
		"memory": store.NewMemory(),
		"badger": b,
	}
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "podo_last_grape_name")
			assert.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, kv.Set(ctx, "podo_last_grape_name", []byte("winter")))
			got, err := kv.Get(ctx, "podo_last_grape_name")
			require.NoError(t, err)
			assert.Equal(t, "winter", string(got))

			require.NoError(t, kv.Set(ctx, "podo_last_grape_name", []byte("karina")))
			got, err = kv.Get(ctx, "podo_last_grape_name")
			require.NoError(t, err)
			assert.Equal(t, "karina", string(got))

			require.NoError(t, kv.Remove(ctx, "podo_last_grape_name"))
			_, err = kv.Get(ctx, "podo_last_grape_name")
			assert.ErrorIs(t, err, store.ErrNotFound)

			// Removing a missing key is not an error.
			assert.NoError(t, kv.Remove(ctx, "never-set"))
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	type row struct {
		Name string  `json:"name"`
		Time float64 `json:"time"`
	}
	in := []row{{Name: "a", Time: 1200}, {Name: "b", Time: 3400}}
	require.NoError(t, store.SetJSON(ctx, kv, "rows", in))

	var out []row
	require.NoError(t, store.GetJSON(ctx, kv, "rows", &out))
	assert.Equal(t, in, out)

	require.NoError(t, kv.Set(ctx, "broken", []byte("{not json")))
	err := store.GetJSON(ctx, kv, "broken", &out)
	assert.ErrorIs(t, err, store.ErrMalformed)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, store.GetJSON(ctx, kv, "missing", &out), store.ErrNotFound)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	buf := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", buf))
	buf[0] = 'z'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "badger")

	b, err := store.OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "podo_ticket_rankings", []byte(`[{"name":"x","time":1}]`)))
	require.NoError(t, b.Close())

	b, err = store.OpenBadger(dir, nil)
	require.NoError(t, err)
	defer b.Close()
	got, err := b.Get(ctx, "podo_ticket_rankings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"x","time":1}]`, string(got))
}
