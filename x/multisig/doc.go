/*
Package multisig implements a transaction ledger guarded by an owner set
with a confirmation threshold.

A wallet declares the owner addresses and how many of them must confirm a
transaction before it may be executed. Proposed transactions are stored as
records, collect confirmations from owners one by one, and once the
threshold is reached any owner can trigger the execution, moving the funds
from the wallet's custody address to the destination. Every transaction is
executed at most once.
*/
package multisig
