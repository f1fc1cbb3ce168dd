package covtest

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/covault/covault"
)

// RandAddr returns a random valid address
func RandAddr() covault.Address {
	raw := make([]byte, covault.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	return covault.Address(raw)
}

// SequenceID returns an 8 byte, big endian encoded ID as
// produced by a sequence counter. The first issued ID is 0.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
