package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault/store"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		increments int64
	}{
		0: {"case", "one", 22},
		1: {"case", "two", 11},
		2: {"other", "one", 77},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			assert.Equal(t, int64(0), s.Issued(db))

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val = s.NextInt(db)
			}
			// the first handed out value is 0
			assert.Equal(t, tc.increments-1, val)
			assert.Equal(t, tc.increments, s.Issued(db))
		})
	}

	// two sequences with the same coordinates share state
	a := NewSequence("same", "seq")
	b := NewSequence("same", "seq")
	assert.Equal(t, int64(0), a.NextInt(db))
	assert.Equal(t, int64(1), b.NextInt(db))

	// the byte representation sorts in issue order
	first := a.NextVal(db)
	second := a.NextVal(db)
	assert.Equal(t, -1, bytes.Compare(first, second))
	assert.Equal(t, 8, len(first))
}
