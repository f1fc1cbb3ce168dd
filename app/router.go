package app

import (
	"fmt"
	"regexp"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

// isPath matches the paths accepted by the router, which are
// segments of lowercase alphanumerics joined with "/",
// eg. "vault/approve".
var isPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)*$`).MatchString

// Router maps message paths to handlers. It implements
// covault.Registry so extensions can register themselves
// without knowing the concrete type.
type Router struct {
	routes map[string]covault.Handler
}

var _ covault.Registry = (*Router)(nil)
var _ covault.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]covault.Handler, 10),
	}
}

// Handle adds a new route. Panics on invalid path expressions
// or duplicate registration, as this only happens during setup.
func (r *Router) Handle(path string, h covault.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered handler for this path, or a
// handler that errors on every call if nothing was registered.
func (r *Router) Handler(path string) covault.Handler {
	h, ok := r.routes[path]
	if !ok {
		return notFoundHandler(path)
	}
	return h
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx covault.Context, store covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	return r.Handler(covault.GetPath(tx)).Check(ctx, store, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx covault.Context, store covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	return r.Handler(covault.GetPath(tx)).Deliver(ctx, store, tx)
}

// notFoundHandler always returns an ErrNotFound that names the
// unknown path.
type notFoundHandler string

var _ covault.Handler = notFoundHandler("")

func (p notFoundHandler) Check(ctx covault.Context, store covault.KVStore, tx covault.Tx) (*covault.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(p))
}

func (p notFoundHandler) Deliver(ctx covault.Context, store covault.KVStore, tx covault.Tx) (*covault.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(p))
}
