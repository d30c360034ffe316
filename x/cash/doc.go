/*
Package cash defines a simple implementation of sending coins
between multi-signature wallets, escrow accounts and any other
addressable party.

It also provides a Controller interface so other extensions can
move funds without knowing about the wallet storage layout.
*/
package cash
