package multisig

import (
	"github.com/iov-one/custody/errors"
)

// Error codes 1120-1129 are reserved for this package.
var (
	// ErrInvalidThreshold is returned when creating a wallet with a
	// threshold outside of the 1..len(owners) range.
	ErrInvalidThreshold = errors.Register(1120, "invalid threshold")

	// ErrAlreadyConfirmed is returned when an owner confirms the same
	// transaction twice.
	ErrAlreadyConfirmed = errors.Register(1121, "already confirmed")

	// ErrNotConfirmed is returned when revoking a confirmation that was
	// never given.
	ErrNotConfirmed = errors.Register(1122, "not confirmed")

	// ErrAlreadyExecuted is returned on any confirm, revoke or execute
	// attempt against an executed transaction.
	ErrAlreadyExecuted = errors.Register(1123, "already executed")

	// ErrInsufficientConfirmations is returned when executing a
	// transaction that did not reach the wallet threshold.
	ErrInsufficientConfirmations = errors.Register(1124, "insufficient confirmations")
)
