package covault_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
)

func TestConditionAddress(t *testing.T) {
	cond := covault.NewCondition("vault", "custody", []byte("pool"))
	addr := cond.Address()
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), covault.AddressLength)

	// deterministic
	again := covault.NewCondition("vault", "custody", []byte("pool")).Address()
	assert.True(t, addr.Equals(again))

	// different data gives different addresses
	other := covault.NewCondition("vault", "custody", []byte("other")).Address()
	assert.False(t, addr.Equals(other))
}

func TestAddressValidate(t *testing.T) {
	short := covault.Address{1, 2, 3}
	assert.Error(t, short.Validate())

	ok := covault.NewCondition("a", "b", []byte("c")).Address()
	assert.NoError(t, ok.Validate())
}

func TestAddressJSON(t *testing.T) {
	addr := covault.NewCondition("a", "b", []byte("c")).Address()

	bz, err := json.Marshal(addr)
	require.NoError(t, err)

	var parsed covault.Address
	require.NoError(t, json.Unmarshal(bz, &parsed))
	assert.True(t, addr.Equals(parsed))

	// the string form parses as well
	var fromString covault.Address
	require.NoError(t, json.Unmarshal([]byte(`"`+addr.String()+`"`), &fromString))
	assert.True(t, addr.Equals(fromString))

	// empty string zeroes the address
	require.NoError(t, json.Unmarshal([]byte(`""`), &fromString))
	assert.Nil(t, fromString)
}
