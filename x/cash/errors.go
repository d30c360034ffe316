package cash

import (
	"github.com/iov-one/custody/errors"
)

// Error codes 1100-1109 are reserved for this package.
var (
	// ErrInsufficientFunds is returned when the source wallet does not
	// hold enough coins to complete the operation.
	ErrInsufficientFunds = errors.Register(1100, "insufficient funds")

	// ErrEmptyAccount is returned when sending from an address that
	// holds no wallet at all.
	ErrEmptyAccount = errors.Register(1101, "empty account")
)
