package x

import (
	"github.com/covault/covault"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding one implementation for all extensions.
type Authenticator interface {
	// GetPermissions reveals all addresses authenticated
	// for this call
	GetPermissions(covault.Context) []covault.Address
	// HasPermission checks if the given address is authenticated
	HasPermission(covault.Context, covault.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetPermissions combines all permissions from all Authenticators
func (m MultiAuth) GetPermissions(ctx covault.Context) []covault.Address {
	var res []covault.Address
	for _, impl := range m.impls {
		add := impl.GetPermissions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasPermission returns true iff any Authenticator supports this
func (m MultiAuth) HasPermission(ctx covault.Context, addr covault.Address) bool {
	for _, impl := range m.impls {
		if impl.HasPermission(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx covault.Context, auth Authenticator) covault.Address {
	signers := auth.GetPermissions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllPermissions returns true if all elements in required are
// also in context.
func HasAllPermissions(ctx covault.Context, auth Authenticator, required []covault.Address) bool {
	for _, r := range required {
		if !auth.HasPermission(ctx, r) {
			return false
		}
	}
	return true
}
