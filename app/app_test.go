package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x/utils"
)

// setHandler writes key=value pairs from the message body
type setHandler struct{}

var _ covault.Handler = setHandler{}

func (setHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	if _, _, err := parsePair(tx); err != nil {
		return nil, err
	}
	return &covault.CheckResult{GasAllocated: 10}, nil
}

func (setHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	key, value, err := parsePair(tx)
	if err != nil {
		return nil, err
	}
	db.Set(key, value)
	return &covault.DeliverResult{Data: key}, nil
}

func parsePair(tx covault.Tx) ([]byte, []byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, nil, err
	}
	chunks := bytes.SplitN(raw, []byte("="), 2)
	if len(chunks) != 2 || len(chunks[0]) == 0 {
		return nil, nil, errors.Wrap(errors.ErrInput, "expected key=value")
	}
	return chunks[0], chunks[1], nil
}

// testDecoder wraps the raw bytes in a tx routed to store/set
func testDecoder(txBytes []byte) (covault.Tx, error) {
	if len(txBytes) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty tx")
	}
	return &covtest.Tx{Msg: &covtest.Msg{
		RoutePath:  "store/set",
		Serialized: txBytes,
	}}, nil
}

func newTestApp(t *testing.T) BaseApp {
	t.Helper()

	router := NewRouter()
	router.Handle("store/set", setHandler{})
	handler := ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)

	store := newStoreApp("test-app")
	store.WithInit(dummyInit{})
	return NewBaseApp(store, testDecoder, handler, false)
}

func TestAppLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(`{"dummy": "genesis value"}`),
		ChainId:       "lifecycle-chain",
	})
	assert.Equal(t, "lifecycle-chain", app.GetChainID())

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	cres := app.CheckTx([]byte("cash=money"))
	require.EqualValues(t, 0, cres.Code, cres.Log)
	assert.Equal(t, int64(10), cres.GasWanted)

	dres := app.DeliverTx([]byte("cash=money"))
	require.EqualValues(t, 0, dres.Code, dres.Log)
	assert.Equal(t, []byte("cash"), dres.Data)

	app.EndBlock(abci.RequestEndBlock{})
	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	// committed state is visible over the abci query interface
	db := NewABCIStore(app)
	assert.Equal(t, []byte("money"), db.Get([]byte("cash")))
	assert.Equal(t, []byte("genesis value"), db.Get([]byte(dummyKey)))
}

func TestAppBadTx(t *testing.T) {
	app := newTestApp(t)
	app.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(`{}`),
		ChainId:       "badtx-chain",
	})
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	// decoder failure
	res := app.DeliverTx(nil)
	assert.NotEqual(t, uint32(0), res.Code)

	// handler failure leaves no trace in state
	res = app.DeliverTx([]byte("=missing key"))
	assert.NotEqual(t, uint32(0), res.Code)
	app.Commit()

	db := NewABCIStore(app)
	assert.Nil(t, db.Get([]byte("missing key")))
}

func TestAppQueryHeight(t *testing.T) {
	app := newTestApp(t)
	app.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(`{}`),
		ChainId:       "height-chain",
	})

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.DeliverTx([]byte("a=1"))
	app.Commit()

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2}})
	app.DeliverTx([]byte("b=2"))
	app.Commit()

	res := app.Query(abci.RequestQuery{Path: "/", Data: []byte("b")})
	assert.Equal(t, int64(2), res.Height)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(2), info.LastBlockHeight)
}
