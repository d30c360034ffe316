package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

const (
	// WalletBucketName is where we store the wallets
	WalletBucketName = "wallets"
	// TransactionBucketName is where we store the transaction records
	TransactionBucketName = "txs"
	// SequenceName is an auto-increment ID counter
	SequenceName = "id"

	// maxOwners bounds the owner set size. Confirmation lookups are
	// linear scans, so the set must stay small.
	maxOwners = 100
)

// Wallet declares an owner set and how many owners must confirm a
// transaction before it can be executed. Wallets are immutable after
// creation.
type Wallet struct {
	Owners    []custody.Address
	Threshold int32
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

func (w *Wallet) Validate() error {
	switch n := len(w.Owners); {
	case n == 0:
		return errors.Wrap(errors.ErrModel, "no owners")
	case n > maxOwners:
		return errors.Wrap(errors.ErrModel, "too many owners")
	}
	index := make(map[string]struct{}, len(w.Owners))
	for _, o := range w.Owners {
		if err := o.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
		if _, ok := index[string(o)]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
		}
		index[string(o)] = struct{}{}
	}
	if w.Threshold < 1 || int(w.Threshold) > len(w.Owners) {
		return errors.Wrapf(ErrInvalidThreshold,
			"threshold %d with %d owners", w.Threshold, len(w.Owners))
	}
	return nil
}

// IsOwner returns true if the address belongs to the owner set.
func (w *Wallet) IsOwner(addr custody.Address) bool {
	for _, o := range w.Owners {
		if o.Equals(addr) {
			return true
		}
	}
	return false
}

// Transaction is a proposed transfer waiting for owner confirmations. Once
// the wallet threshold is reached it can be executed exactly once.
type Transaction struct {
	WalletID    []byte
	Destination custody.Address
	Amount      coin.Coin
	// Payload is an opaque data blob attached by the proposer.
	Payload       []byte
	Confirmations []custody.Address
	Executed      bool
}

var _ orm.Model = (*Transaction)(nil)

func (t *Transaction) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

func (t *Transaction) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

func (t *Transaction) Validate() error {
	if len(t.WalletID) == 0 {
		return errors.Wrap(errors.ErrModel, "missing wallet id")
	}
	if err := t.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !t.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", t.Amount)
	}
	if err := t.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// Confirmed returns true if the address already confirmed this transaction.
func (t *Transaction) Confirmed(addr custody.Address) bool {
	for _, c := range t.Confirmations {
		if c.Equals(addr) {
			return true
		}
	}
	return false
}

// ConfirmationCount returns the number of confirmations given so far.
func (t *Transaction) ConfirmationCount() int {
	return len(t.Confirmations)
}

// MultiSigCondition returns the condition for a wallet with the given ID.
// Its address holds the wallet funds.
func MultiSigCondition(id []byte) custody.Condition {
	return custody.NewCondition("multisig", "usage", id)
}

// NewWalletBucket returns a bucket for keeping track of wallets, with an ID
// sequence assigning wallet ids.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(WalletBucketName,
		orm.WithIDSequence(orm.NewSequence(WalletBucketName, SequenceName)))
}

// NewTransactionBucket returns a bucket for keeping track of transaction
// records, with an ID sequence assigning record ids at propose time.
func NewTransactionBucket() orm.ModelBucket {
	return orm.NewModelBucket(TransactionBucketName,
		orm.WithIDSequence(orm.NewSequence(TransactionBucketName, SequenceName)))
}
