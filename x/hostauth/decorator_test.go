package hostauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
	"github.com/covault/covault/x"
)

// signedTx wraps the test transaction with a host-attributed caller.
type signedTx struct {
	covault.Tx
	signer covault.Address
}

func (tx *signedTx) GetSigner() covault.Address {
	return tx.signer
}

// captureHandler remembers the context it was called with so the
// test can inspect what the decorator injected.
type captureHandler struct {
	ctx covault.Context
}

func (h *captureHandler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	h.ctx = ctx
	return &covault.CheckResult{}, nil
}

func (h *captureHandler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	h.ctx = ctx
	return &covault.DeliverResult{}, nil
}

func TestDecoratorAttributesCaller(t *testing.T) {
	db := store.MemStore()
	signer := covtest.RandAddr()
	tx := &signedTx{Tx: &covtest.Tx{}, signer: signer}

	var h captureHandler
	_, err := NewDecorator().Deliver(context.Background(), db, tx, &h)
	require.NoError(t, err)

	auth := Authenticate{}
	assert.Equal(t, []covault.Address{signer}, auth.GetPermissions(h.ctx))
	assert.True(t, auth.HasPermission(h.ctx, signer))
	assert.False(t, auth.HasPermission(h.ctx, covtest.RandAddr()))
	assert.Equal(t, signer, x.MainSigner(h.ctx, auth))
}

func TestDecoratorRejectsMissingCaller(t *testing.T) {
	db := store.MemStore()

	var h captureHandler
	// a tx without a caller
	_, err := NewDecorator().Check(context.Background(), db, &covtest.Tx{}, &h)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// an empty caller is as good as none
	_, err = NewDecorator().Deliver(context.Background(), db, &signedTx{Tx: &covtest.Tx{}}, &h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestDecoratorRejectsMalformedCaller(t *testing.T) {
	db := store.MemStore()
	tx := &signedTx{Tx: &covtest.Tx{}, signer: []byte{0x1, 0x2}}

	var h captureHandler
	_, err := NewDecorator().Deliver(context.Background(), db, tx, &h)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestDecoratorAllowMissingSigner(t *testing.T) {
	db := store.MemStore()

	var h captureHandler
	_, err := NewDecorator().AllowMissingSigner().Deliver(context.Background(), db, &covtest.Tx{}, &h)
	require.NoError(t, err)

	// nothing is attributed
	assert.Nil(t, Authenticate{}.GetPermissions(h.ctx))
	assert.Nil(t, x.MainSigner(h.ctx, Authenticate{}))
}

func TestAuthenticateOnBareContext(t *testing.T) {
	auth := Authenticate{}
	assert.Nil(t, auth.GetPermissions(context.Background()))
	assert.False(t, auth.HasPermission(context.Background(), covtest.RandAddr()))
}
