package orm

import "github.com/iov-one/custody/errors"

// Error codes 1000-1009 are reserved for the orm package.
var (
	// ErrIteratorDone is returned by a ModelIterator when all entities
	// were consumed.
	ErrIteratorDone = errors.Register(1000, "iterator done")
)
