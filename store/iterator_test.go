package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCombinedIterator checks merging cache entries with
// parent data, including overwrites and deletes in the cache
func TestCombinedIterator(t *testing.T) {
	ks := [][]byte{
		[]byte("aab"), []byte("bcd"), []byte("ccc"), []byte("dfg"),
	}
	vs := [][]byte{
		[]byte("one"), []byte("two"), []byte("three"), []byte("four"),
	}

	parent := MemStore()
	parent.Set(ks[0], vs[0])
	parent.Set(ks[2], vs[2])

	cache := parent.CacheWrap()
	// overwrite one from the parent, add one, delete one
	cache.Set(ks[1], vs[1])
	cache.Set(ks[2], vs[3])
	cache.Delete(ks[0])
	cache.Set(ks[3], vs[0])

	expect := []Model{
		pair(ks[1], vs[1]),
		pair(ks[2], vs[3]),
		pair(ks[3], vs[0]),
	}
	verifyIterator(t, expect, cache.Iterator(nil, nil))
	verifyIterator(t, reverse(expect), cache.ReverseIterator(nil, nil))

	// the parent is untouched until the write
	verifyIterator(t,
		[]Model{pair(ks[0], vs[0]), pair(ks[2], vs[2])},
		parent.Iterator(nil, nil))

	cache.Write()
	verifyIterator(t, expect, parent.Iterator(nil, nil))
}

func TestCacheIteratorClose(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("A"))
	cache := db.CacheWrap()

	it := cache.Iterator([]byte("a"), []byte("z"))
	assert.True(t, it.Valid())
	// Close must be safe to call mid-iteration and repeatedly.
	it.Close()
	it.Close()

	rit := cache.ReverseIterator([]byte("a"), []byte("z"))
	assert.True(t, rit.Valid())
	rit.Close()
}
