/*
Package hostauth attributes transactions to the caller identity
supplied by the host environment.

No cryptographic verification happens here. The host already
authenticated the caller and the transaction carries the
resulting address. The decorator copies that address into the
context so that handlers can consume it through the standard
x.Authenticator interface.
*/
package hostauth
