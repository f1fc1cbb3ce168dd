package x_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/x"
)

func TestChainAuth(t *testing.T) {
	a := covtest.RandAddr()
	b := covtest.RandAddr()
	c := covtest.RandAddr()

	auth1 := &covtest.CtxAuth{Key: "auth1"}
	auth2 := &covtest.CtxAuth{Key: "auth2"}
	both := x.ChainAuth(auth1, auth2)

	ctx := auth1.SetPermissions(context.Background(), a)
	ctx = auth2.SetPermissions(ctx, b)

	assert.True(t, both.HasPermission(ctx, a))
	assert.True(t, both.HasPermission(ctx, b))
	assert.False(t, both.HasPermission(ctx, c))

	perms := both.GetPermissions(ctx)
	assert.Equal(t, []covault.Address{a, b}, perms)
}

func TestMainSigner(t *testing.T) {
	a := covtest.RandAddr()
	b := covtest.RandAddr()
	auth := &covtest.CtxAuth{Key: "auth"}

	// no signer at all
	assert.Nil(t, x.MainSigner(context.Background(), auth))

	ctx := auth.SetPermissions(context.Background(), a, b)
	assert.Equal(t, a, x.MainSigner(ctx, auth))
}

func TestHasAllPermissions(t *testing.T) {
	a := covtest.RandAddr()
	b := covtest.RandAddr()
	c := covtest.RandAddr()
	auth := &covtest.CtxAuth{Key: "auth"}

	ctx := auth.SetPermissions(context.Background(), a, b)

	assert.True(t, x.HasAllPermissions(ctx, auth, nil))
	assert.True(t, x.HasAllPermissions(ctx, auth, []covault.Address{a, b}))
	assert.False(t, x.HasAllPermissions(ctx, auth, []covault.Address{a, b, c}))
}
