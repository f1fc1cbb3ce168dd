package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
)

const dummyKey = "dummy"

type dummyInit struct{}

func (dummyInit) FromGenesis(opts covault.Options, kv covault.KVStore) error {
	var value string
	if err := opts.ReadOptions(dummyKey, &value); err != nil {
		return err
	}
	kv.Set([]byte(dummyKey), []byte(value))
	return nil
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(opts covault.Options, kv covault.KVStore) error {
	c.called++
	return nil
}

func TestLoadGenesis(t *testing.T) {
	gen, err := loadGenesis("testdata/genesis.json")
	require.NoError(t, err)
	assert.Equal(t, "test-chain-67", gen.ChainID)

	var value string
	require.NoError(t, gen.AppOptions.ReadOptions(dummyKey, &value))
	assert.Equal(t, "secret", value)
}

func TestLoadGenesisMissingFile(t *testing.T) {
	_, err := loadGenesis("testdata/no_such_file.json")
	assert.Error(t, err)
}

func TestChainInitializers(t *testing.T) {
	c1 := new(countInit)
	c2 := new(countInit)
	init := ChainInitializers(c1, dummyInit{}, c2)

	s := newStoreApp("genesis-app")
	opts := covault.Options{dummyKey: []byte(`"top"`)}
	require.NoError(t, init.FromGenesis(opts, s.DeliverStore()))

	assert.Equal(t, 1, c1.called)
	assert.Equal(t, 1, c2.called)
	assert.Equal(t, []byte("top"), s.DeliverStore().Get([]byte(dummyKey)))
}
