package hostauth

import (
	"context"

	"github.com/covault/covault"
	"github.com/covault/covault/x"
)

type contextKey int // local to the hostauth module

const (
	contextKeySigner contextKey = iota
)

// withSigner is a private method, as only this module
// can attribute a caller
func withSigner(ctx covault.Context, signer covault.Address) covault.Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// Authenticate implements x.Authenticator on top of the
// host-attributed caller stored in the context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetPermissions returns the caller of the current Context.
// May be empty
func (a Authenticate) GetPermissions(ctx covault.Context) []covault.Address {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigner).(covault.Address)
	if val == nil {
		return nil
	}
	return []covault.Address{val}
}

// HasPermission returns true iff addr is the attributed caller
func (a Authenticate) HasPermission(ctx covault.Context, addr covault.Address) bool {
	val, _ := ctx.Value(contextKeySigner).(covault.Address)
	return val != nil && val.Equals(addr)
}
