package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/covault/covault/store"
)

// cacheSize is the number of inner nodes held in memory by the tree
const cacheSize = 10000

// CommitStore manages an iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store backed by goleveldb files
// under the given directory
func NewCommitStore(dir, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, dir)
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{tree: tree}
}

// MockCommitStore returns a cheap in-memory implementation for tests
func MockCommitStore() CommitStore {
	db := dbm.NewMemDB()
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{tree: tree}
}

// Get returns the current value of the key.
// Returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) []byte {
	_, value := s.tree.Get(key)
	return value
}

// Commit saves the next version to disk, and returns info
func (s CommitStore) Commit() store.CommitID {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// CacheWrap gives us a savepoint to perform actions.
// Writes only hit the tree when the wrap is written, and
// nothing touches disk before Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	reader := treeReader{s.tree}
	batch := store.NewNonAtomicBatch(treeWriter{s.tree})
	return store.NewBTreeCacheWrap(reader, batch, nil)
}

// treeReader exposes read access to the working tree
type treeReader struct {
	tree *iavl.MutableTree
}

var _ store.ReadOnlyKVStore = treeReader{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (r treeReader) Get(key []byte) []byte {
	_, value := r.tree.Get(key)
	return value
}

// Has checks if a key exists. Panics on nil key.
func (r treeReader) Has(key []byte) bool {
	return r.tree.Has(key)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
// Start must be less than end, or the Iterator is invalid.
func (r treeReader) Iterator(start, end []byte) store.Iterator {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	r.tree.IterateRange(start, end, true, add)
	return store.NewSliceIterator(res)
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (r treeReader) ReverseIterator(start, end []byte) store.Iterator {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	r.tree.IterateRange(start, end, false, add)
	return store.NewSliceIterator(res)
}

// treeWriter applies batched writes to the working tree
type treeWriter struct {
	tree *iavl.MutableTree
}

var _ store.SetDeleter = treeWriter{}

// Set adds a new value to the working tree
func (w treeWriter) Set(key, value []byte) {
	w.tree.Set(key, value)
}

// Delete removes a key from the working tree
func (w treeWriter) Delete(key []byte) {
	w.tree.Remove(key)
}
