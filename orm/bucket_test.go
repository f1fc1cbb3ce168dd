package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

// counter is a minimal model to exercise bucket plumbing
type counter struct {
	count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.count), nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrap(errors.ErrInput, "expected 8 bytes")
	}
	c.count = DecodeSequence(raw)
	return nil
}

func (c *counter) Validate() error {
	if c.count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func counterObj(key []byte, count int64) Object {
	return NewSimpleObj(key, &counter{count: count})
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))

	k := []byte("alice")

	// empty read
	got, err := bucket.Get(db, k)
	require.NoError(t, err)
	assert.Nil(t, got)

	// cannot save invalid data
	err = bucket.Save(db, counterObj(k, -20))
	assert.Error(t, err)
	assert.True(t, errors.ErrState.Is(err))

	// save and read back
	err = bucket.Save(db, counterObj(k, 77))
	require.NoError(t, err)
	got, err = bucket.Get(db, k)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, k, got.Key())
	assert.Equal(t, int64(77), got.Value().(*counter).count)

	// delete it and it is gone
	err = bucket.Delete(db, k)
	require.NoError(t, err)
	got, err = bucket.Get(db, k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("one", NewSimpleObj(nil, new(counter)))
	two := NewBucket("two", NewSimpleObj(nil, new(counter)))

	k := []byte("shared")
	require.NoError(t, one.Save(db, counterObj(k, 1)))
	require.NoError(t, two.Save(db, counterObj(k, 2)))

	o, err := one.Get(db, k)
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.Value().(*counter).count)

	o, err = two.Get(db, k)
	require.NoError(t, err)
	assert.Equal(t, int64(2), o.Value().(*counter).count)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))

	require.NoError(t, bucket.Save(db, counterObj([]byte("aa"), 5)))
	require.NoError(t, bucket.Save(db, counterObj([]byte("ab"), 6)))
	require.NoError(t, bucket.Save(db, counterObj([]byte("zz"), 7)))

	qr := covault.NewQueryRouter()
	bucket.Register("counters", qr)

	h := qr.Handler("/counters")
	require.NotNil(t, h)

	// point query hits exactly one
	res, err := h.Query(db, covault.KeyQueryMod, []byte("ab"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, bucket.DBKey([]byte("ab")), res[0].Key)

	// miss returns nothing
	res, err = h.Query(db, covault.KeyQueryMod, []byte("miss"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	// prefix query returns both matches in order
	res, err = h.Query(db, covault.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, bucket.DBKey([]byte("aa")), res[0].Key)
	assert.Equal(t, bucket.DBKey([]byte("ab")), res[1].Key)

	// unknown modifier is rejected
	_, err = h.Query(db, "unknown", []byte("a"))
	assert.Error(t, err)
}

func TestBucketParseBadData(t *testing.T) {
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))
	_, err := bucket.Parse([]byte("k"), []byte("too-short"))
	assert.Error(t, err)
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("l", NewSimpleObj(nil, new(counter)))
	})
	assert.Panics(t, func() {
		NewBucket("UPPER", NewSimpleObj(nil, new(counter)))
	})
}
