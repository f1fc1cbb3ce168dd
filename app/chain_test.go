package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault/covtest"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &covtest.Decorator{}
	c2 := &covtest.Decorator{}
	c3 := &covtest.Decorator{}
	h := &covtest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		c3,
	).WithHandler(h)

	bg := context.Background()

	_, err := stack.Check(bg, nil, nil)
	assert.NoError(t, err)
	_, err = stack.Deliver(bg, nil, nil)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failing decorator stops the chain before the handler
	c2.CheckErr = errors.Wrap(errors.ErrState, "broken")
	c2.DeliverErr = c2.CheckErr
	_, err = stack.Check(bg, nil, nil)
	assert.True(t, errors.ErrState.Is(err))
	_, err = stack.Deliver(bg, nil, nil)
	assert.True(t, errors.ErrState.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainNilDecorators(t *testing.T) {
	c1 := &covtest.Decorator{}
	h := &covtest.Handler{}

	// nil interface values and typed nil pointers are dropped
	var typedNil *covtest.Decorator
	stack := ChainDecorators(nil, c1, typedNil).Chain(nil).WithHandler(h)

	_, err := stack.Deliver(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, h.CallCount())
}
