package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covault/covault/covtest"
	"github.com/covault/covault/store"
)

func TestActionTagger(t *testing.T) {
	db := store.MemStore()
	h := &covtest.Handler{}
	tx := &covtest.Tx{Msg: &covtest.Msg{RoutePath: "vault/approve"}}

	res, err := NewActionTagger().Deliver(context.Background(), db, tx, h)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, ActionKey, string(res.Tags[0].Key))
	assert.Equal(t, "vault/approve", string(res.Tags[0].Value))

	// check is a passthrough
	_, err = NewActionTagger().Check(context.Background(), db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, 2, h.CallCount())
}
