package covtest

import (
	"context"
	"fmt"

	"github.com/covault/covault"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses.
// You can use either Signer or Signers (or both) attributes to reference
// addresses. This is for the convinience and each time all signers
// (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convinience attribute when creating an authentication method for a
	// single signer.
	// When authenticating all signers declared on this structure are
	// considered.
	Signer covault.Address

	// Signers represents an authentication of multiple signers.
	Signers []covault.Address
}

func (a *Auth) GetPermissions(covault.Context) []covault.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasPermission(ctx covault.Context, addr covault.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve permissions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetPermissions(ctx covault.Context, addrs ...covault.Address) covault.Context {
	return context.WithValue(ctx, a.Key, addrs)
}

func (a *CtxAuth) GetPermissions(ctx covault.Context) []covault.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]covault.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []covault.Address got %T", ctx.Value(a.Key)))
	}
	return addrs
}

func (a *CtxAuth) HasPermission(ctx covault.Context, addr covault.Address) bool {
	for _, s := range a.GetPermissions(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
