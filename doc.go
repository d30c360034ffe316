/*
Package custody is a ledger-state toolkit for building value custody
applications. It provides the shared vocabulary used by all extensions:
addresses and conditions to identify actors, messages and transactions to
describe requested state transitions, handlers and decorators to process
them, and a key-value store abstraction they all operate on.

The business logic lives in the x/ extension packages. The multisig
extension keeps a ledger of proposed transfers that accumulate owner
confirmations before a threshold allows exactly-once execution. The escrow
extension keeps deposits in custody through a funded/released/disputed
lifecycle with deterministic fee accounting. Both move value exclusively
through the cash extension, which guarantees all-or-nothing transfers.

State mutations are serialized by the surrounding host and committed
through cache-wraps, so a failed operation never leaves a partial write
behind.
*/
package custody
