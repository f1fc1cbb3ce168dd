package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault"
	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	counter := &covtest.Handler{}
	boom := errors.Wrap(errors.ErrState, "boom")
	r.Handle("good/path", counter)
	r.Handle("bad", &covtest.Handler{CheckErr: boom, DeliverErr: boom})

	// invalid registrations panic
	assert.Panics(t, func() { r.Handle("good/path", counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })
	assert.Panics(t, func() { r.Handle("Upper", counter) })
	assert.Panics(t, func() { r.Handle("trailing/", counter) })

	// proper paths dispatch to the registered handler
	assert.Equal(t, 0, counter.CallCount())
	_, err := r.Handler("good/path").Check(nil, nil, nil)
	assert.NoError(t, err)
	_, err = r.Handler("good/path").Deliver(nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	// errors from a registered handler pass through unchanged
	_, err = r.Handler("bad").Deliver(nil, nil, nil)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, 2, counter.CallCount())

	// unknown paths return a not found error
	_, err = r.Handler("missing").Deliver(nil, nil, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Handler("missing").Check(nil, nil, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}

func TestRouterDispatchesOnMsgPath(t *testing.T) {
	r := NewRouter()
	counter := &covtest.Handler{}
	r.Handle("count/me", counter)

	ctx := context.Background()
	good := &covtest.Tx{Msg: &covtest.Msg{RoutePath: "count/me"}}
	other := &covtest.Tx{Msg: &covtest.Msg{RoutePath: "count/you"}}

	var h covault.Handler = r
	_, err := h.Check(ctx, nil, good)
	assert.NoError(t, err)
	_, err = h.Deliver(ctx, nil, good)
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = h.Deliver(ctx, nil, other)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
