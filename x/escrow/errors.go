package escrow

import (
	"github.com/iov-one/custody/errors"
)

// Error codes 1110-1119 are reserved for this package.
var (
	// ErrAmountMismatch is returned when funding an escrow with an
	// amount different from the one agreed at creation.
	ErrAmountMismatch = errors.Register(1110, "amount mismatch")
)
