package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

// BaseApp adds DeliverTx, CheckTx, and BeginBlock
// handlers to the storage and query functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder covault.TxDecoder
	handler covault.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(
	store *StoreApp,
	decoder covault.TxDecoder,
	handler covault.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return covault.DeliverTxError(err, b.debug)
	}

	ctx := covault.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", covault.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return covault.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return covault.CheckTxError(err, b.debug)
	}

	ctx := covault.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", covault.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return covault.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics
func (b BaseApp) loadTx(txBytes []byte) (tx covault.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
