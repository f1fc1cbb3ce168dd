package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store"
)

type panicHandler struct{}

func (panicHandler) Check(covault.Context, covault.KVStore, covault.Tx) (*covault.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(covault.Context, covault.KVStore, covault.Tx) (*covault.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecoveryTurnsPanicIntoError(t *testing.T) {
	db := store.MemStore()
	r := NewRecovery()

	_, err := r.Check(context.Background(), db, &covtest.Tx{}, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(context.Background(), db, &covtest.Tx{}, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestRecoveryPassesThrough(t *testing.T) {
	db := store.MemStore()
	r := NewRecovery()
	h := &covtest.Handler{}

	_, err := r.Check(context.Background(), db, &covtest.Tx{}, h)
	require.NoError(t, err)
	_, err = r.Deliver(context.Background(), db, &covtest.Tx{}, h)
	require.NoError(t, err)
	assert.Equal(t, 2, h.CallCount())
}
