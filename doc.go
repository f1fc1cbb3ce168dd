/*
Package covault defines the common interfaces that tie the pieces of the
custodial vault application together.

The root package is interface-only where possible: concrete state lives in
the store and orm packages, business logic in the x/... extensions, and the
ABCI plumbing in the app package. Handlers receive a Context, a KVStore and
a Tx; everything a handler may mutate is reachable through the KVStore it
was given, so a discarded cache-wrap erases every effect of a failed call.
*/
package covault
