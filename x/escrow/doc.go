/*
Package escrow implements a fund custodian for two-party exchanges with an
external arbiter.

The buyer creates an escrow record naming a seller and an arbiter, funds it
with the exact agreed amount, and later releases the funds to the seller.
A service fee in basis points, snapshotted on the record at creation, is
deducted from every disbursement and paid to the configured collector.
Either party can move a funded escrow into dispute, freezing the funds
until the arbiter resolves it to the buyer, to the seller, or splits the
remainder between them.

Each record keeps its funds on an own custody address derived from the
record id. Records walk a strict lifecycle (created, funded, then released
or disputed and resolved) and are never deleted, so terminal states retain
the full history.
*/
package escrow
