/*
Package app wires together the covault components into a complete
ABCI application.

It combines the host-attributed authentication, the vault handlers
and the cash controller with the standard decorator stack, and
exposes constructors used by the covd server command.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/covault/covault"
	"github.com/covault/covault/app"
	"github.com/covault/covault/errors"
	"github.com/covault/covault/store/iavl"
	"github.com/covault/covault/x"
	"github.com/covault/covault/x/cash"
	"github.com/covault/covault/x/hostauth"
	"github.com/covault/covault/x/utils"
	"github.com/covault/covault/x/vault"
)

// Authenticator returns the authentication used by this app,
// trusting the host supplied caller identity.
func Authenticator() x.Authenticator {
	return hostauth.Authenticate{}
}

// CashControl returns a controller for balance functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// tagging, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		// deposits may come without attribution
		hostauth.NewDecorator().AllowMissingSigner(),
		// on DeliverTx, failed execution must leave no trace
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router, dispatching to the vault
// handlers
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	vault.RegisterRoutes(r, authFn, CashControl())
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/vaults", "/proposals" and "/wallets"
func QueryRouter() covault.QueryRouter {
	r := covault.NewQueryRouter()
	r.RegisterAll(
		vault.RegisterQuery,
		cash.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() covault.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h covault.Handler,
	tx covault.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (covault.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
