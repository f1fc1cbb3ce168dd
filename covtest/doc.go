/*
Package covtest provides mocks and helpers for testing
handlers, decorators and applications built on covault.
*/
package covtest
