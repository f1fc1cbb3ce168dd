package hostauth

import (
	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

// SignerTx is implemented by transactions that carry the caller
// identity attributed by the host environment.
type SignerTx interface {
	covault.Tx
	GetSigner() covault.Address
}

// Decorator copies the host-attributed caller into the context
type Decorator struct {
	allowMissingSigner bool
}

var _ covault.Decorator = Decorator{}

// NewDecorator returns a decorator that requires every
// transaction to name a caller
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigner: false,
	}
}

// AllowMissingSigner allows us to pass along items with no caller,
// eg. open deposits
func (d Decorator) AllowMissingSigner() Decorator {
	d.allowMissingSigner = true
	return d
}

// Check attributes the caller before calling down the stack.
func (d Decorator) Check(ctx covault.Context, store covault.KVStore, tx covault.Tx, next covault.Checker) (*covault.CheckResult, error) {
	ctx, err := d.authenticate(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver attributes the caller before calling down the stack.
func (d Decorator) Deliver(ctx covault.Context, store covault.KVStore, tx covault.Tx, next covault.Deliverer) (*covault.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authenticate(ctx covault.Context, tx covault.Tx) (covault.Context, error) {
	stx, ok := tx.(SignerTx)
	if !ok || len(stx.GetSigner()) == 0 {
		if d.allowMissingSigner {
			return ctx, nil
		}
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing caller")
	}
	signer := stx.GetSigner()
	if err := signer.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	return withSigner(ctx, signer), nil
}
