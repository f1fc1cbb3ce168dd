/*
Package cash defines a simple wallet implementation to store
and move multiple currencies. It provides the funds ledger
behind the vault extension: the pooled custody balance as well
as every payout destination is a cash wallet.
*/
package cash
