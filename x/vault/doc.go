/*
Package vault implements a multi party wallet governed by an
approval threshold.

A single registry record holds the participant set and the
threshold. Any participant may propose one of four actions:
transfer pooled funds, add a participant, remove a participant,
or change the threshold. Proposals receive sequential ids,
start Pending with the proposer's approval already recorded,
and collect further approvals until any participant triggers
execution. Execution requires the approval count to reach the
threshold and moves the proposal to its terminal Executed state
before any effect is applied.

Funds are pooled on a single account derived from a condition
owned by this extension. Deposits to the pool are open to
anyone and require no approvals.
*/
package vault
