package orm

import (
	"encoding/binary"

	"github.com/covault/covault"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
//
// The first value handed out is 0.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal returns the next value of the sequence as 8 bytes
func (s Sequence) NextVal(db covault.KVStore) []byte {
	return EncodeSequence(s.increment(db))
}

// NextInt returns the next value of the sequence as int
func (s Sequence) NextInt(db covault.KVStore) int64 {
	return s.increment(db)
}

// Issued returns how many values were handed out so far.
// This method does not modify the sequence state.
func (s Sequence) Issued(db covault.ReadOnlyKVStore) int64 {
	return DecodeSequence(db.Get(s.id))
}

func (s Sequence) increment(db covault.KVStore) int64 {
	val := DecodeSequence(db.Get(s.id))
	db.Set(s.id, EncodeSequence(val+1))
	return val
}

// DecodeSequence interprets nil as zero
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence stores the value as 8 bytes big-endian
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
