/*
Package errors implements custom error interfaces for custody.

The idea is to reuse as many errors from this package as possible and
define new errors only when necessary, inside of the extension that
requires them. Errors are categorized by their root cause: each error
must wrap one of the registered root errors, so matching by kind is
possible no matter how many description layers were added on top.

Use Wrap and Wrapf to add context to an error while preserving its kind
and use the root error Is method to test for a kind:

    if errors.ErrNotFound.Is(err) {
        ...
    }
*/
package errors
