package iavl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreRoundtrip(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	k, v := []byte("ticket"), []byte("stub")

	// writes in a cache wrap are invisible until written
	cache := kv.CacheWrap()
	cache.Set(k, v)
	assert.Nil(t, kv.Get(k))
	cache.Write()
	assert.Equal(t, v, kv.Get(k))

	// a discarded wrap leaves no trace
	trash := kv.CacheWrap()
	trash.Set([]byte("gone"), []byte("gone"))
	trash.Discard()
	assert.Nil(t, kv.Get([]byte("gone")))

	// commit bumps the version and keeps the data
	id := kv.Commit()
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)
	assert.Equal(t, v, kv.Get(k))
	assert.Equal(t, id.Version, kv.LatestVersion().Version)
}

func TestCommitStoreIterate(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	cache := kv.CacheWrap()
	cache.Set([]byte("a"), []byte("1"))
	cache.Set([]byte("b"), []byte("2"))
	cache.Set([]byte("c"), []byte("3"))
	cache.Write()
	kv.Commit()

	// iterate over a fresh wrap, including data written in the wrap
	read := kv.CacheWrap()
	read.Set([]byte("ab"), []byte("15"))
	read.Delete([]byte("b"))

	iter := read.Iterator([]byte("a"), []byte("c"))
	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	iter.Close()
	assert.Equal(t, []string{"a", "ab"}, keys)
	read.Discard()
}
