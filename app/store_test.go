package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/covault/covault"
	"github.com/covault/covault/store/iavl"
)

// rawQuery exposes raw key lookups over the query interface
type rawQuery struct{}

var _ covault.QueryHandler = rawQuery{}

func (rawQuery) Query(db covault.ReadOnlyKVStore, mod string, data []byte) ([]covault.Model, error) {
	value := db.Get(data)
	if value == nil {
		return nil, nil
	}
	return []covault.Model{{Key: data, Value: value}}, nil
}

func newStoreApp(name string) *StoreApp {
	qr := covault.NewQueryRouter()
	qr.Register("/", rawQuery{})
	return NewStoreApp(name, iavl.MockCommitStore(), qr, context.Background())
}

func TestStoreAppInfo(t *testing.T) {
	s := newStoreApp("info-app")

	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, "info-app", info.Data)
	assert.Equal(t, int64(0), info.LastBlockHeight)
}

func TestStoreAppInitChain(t *testing.T) {
	s := newStoreApp("init-app")
	s.WithInit(dummyInit{})
	assert.Equal(t, "", s.GetChainID())

	appState := []byte(`{"dummy": "init value"}`)
	s.InitChain(abci.RequestInitChain{
		AppStateBytes: appState,
		ChainId:       "test-chain-123",
	})

	assert.Equal(t, "test-chain-123", s.GetChainID())
	assert.Equal(t, []byte("init value"), s.DeliverStore().Get([]byte(dummyKey)))

	// the chain cannot be initialized twice
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			AppStateBytes: appState,
			ChainId:       "test-chain-456",
		})
	})
}

func TestStoreAppInitChainInvalid(t *testing.T) {
	// missing app state
	s := newStoreApp("init-app")
	s.WithInit(dummyInit{})
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{ChainId: "test-chain-123"})
	})

	// invalid chain id
	s = newStoreApp("init-app")
	s.WithInit(dummyInit{})
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			AppStateBytes: []byte(`{}`),
			ChainId:       "no",
		})
	})
}

func TestStoreAppCommitAndQuery(t *testing.T) {
	s := newStoreApp("query-app")

	// writes are not visible over query before commit
	s.DeliverStore().Set([]byte("cash"), []byte("money"))
	res := s.Query(abci.RequestQuery{Path: "/", Data: []byte("cash")})
	require.EqualValues(t, 0, res.Code)
	var values ResultSet
	require.NoError(t, values.Unmarshal(res.Value))
	assert.Empty(t, values.Results)

	cres := s.Commit()
	assert.NotEmpty(t, cres.Data)

	// after commit the data is there
	res = s.Query(abci.RequestQuery{Path: "/", Data: []byte("cash")})
	require.EqualValues(t, 0, res.Code)
	assert.Equal(t, int64(1), res.Height)

	var keys ResultSet
	require.NoError(t, keys.Unmarshal(res.Key))
	require.NoError(t, values.Unmarshal(res.Value))
	models, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, []byte("cash"), models[0].Key)
	assert.Equal(t, []byte("money"), models[0].Value)

	// unknown query paths are rejected
	res = s.Query(abci.RequestQuery{Path: "/nothing", Data: []byte("cash")})
	assert.EqualValues(t, unknownRequestCode, res.Code)
}

func TestStoreAppBlockContext(t *testing.T) {
	s := newStoreApp("block-app")

	s.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 53}})
	height, ok := covault.GetHeight(s.BlockContext())
	assert.True(t, ok)
	assert.Equal(t, int64(53), height)

	end := s.EndBlock(abci.RequestEndBlock{})
	assert.Empty(t, end.ValidatorUpdates)
}
