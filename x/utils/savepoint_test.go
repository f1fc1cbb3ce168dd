package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

// writingHandler sets a key on every call and optionally fails
// afterwards.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writingHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	db.Set(h.key, h.value)
	if h.err != nil {
		return nil, h.err
	}
	return &covault.CheckResult{}, nil
}

func (h writingHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	db.Set(h.key, h.value)
	if h.err != nil {
		return nil, h.err
	}
	return &covault.DeliverResult{}, nil
}

func TestSavepointCommitsOnSuccess(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{key: []byte("a"), value: []byte("1")}
	save := NewSavepoint().OnCheck().OnDeliver()

	_, err := save.Check(context.Background(), db, &covtest.Tx{}, h)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), db.Get([]byte("a")))

	h2 := writingHandler{key: []byte("b"), value: []byte("2")}
	_, err = save.Deliver(context.Background(), db, &covtest.Tx{}, h2)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), db.Get([]byte("b")))
}

func TestSavepointRollsBackOnError(t *testing.T) {
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrState, "boom")
	h := writingHandler{key: []byte("a"), value: []byte("1"), err: fail}
	save := NewSavepoint().OnCheck().OnDeliver()

	_, err := save.Check(context.Background(), db, &covtest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	assert.Nil(t, db.Get([]byte("a")))

	_, err = save.Deliver(context.Background(), db, &covtest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	assert.Nil(t, db.Get([]byte("a")))
}

func TestSavepointInactiveWritesThrough(t *testing.T) {
	// without OnCheck/OnDeliver the writes persist, error or not
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrState, "boom")
	h := writingHandler{key: []byte("a"), value: []byte("1"), err: fail}
	save := NewSavepoint()

	_, err := save.Deliver(context.Background(), db, &covtest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, []byte("1"), db.Get([]byte("a")))
}

func TestSavepointTriggerSelection(t *testing.T) {
	// OnCheck only: deliver errors write through, check errors do not
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrState, "boom")
	save := NewSavepoint().OnCheck()

	h := writingHandler{key: []byte("a"), value: []byte("1"), err: fail}
	_, err := save.Check(context.Background(), db, &covtest.Tx{}, h)
	assert.Error(t, err)
	assert.Nil(t, db.Get([]byte("a")))

	_, err = save.Deliver(context.Background(), db, &covtest.Tx{}, h)
	assert.Error(t, err)
	assert.Equal(t, []byte("1"), db.Get([]byte("a")))
}
