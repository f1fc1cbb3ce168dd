/*
Package errors implements custom error interfaces for covault.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with a
unique ABCI code so that every failure surfaced to the host can be classified
by the client without parsing the message.
*/
package errors
