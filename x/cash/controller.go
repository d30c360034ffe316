package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Controller is the functionality needed by handlers of this and other
// packages that move funds around. BaseController should work plenty fine,
// but you can add other logic if so desired
type Controller interface {
	CoinMover
	Balance(custody.ReadOnlyKVStore, custody.Address) (coin.Coins, error)
}

// CoinMover is the interface that must be implemented by any extension that
// wants to transfer value between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. Both wallets are written only after both
	// updates computed without error; run under a savepoint for
	// all-or-nothing delivery.
	MoveCoins(store custody.KVStore, src custody.Address, dest custody.Address, amount coin.Coin) error

	// IssueCoins increases the number of funds on the destination
	// account. New funds are created with this call, this is minting.
	IssueCoins(store custody.KVStore, dest custody.Address, amount coin.Coin) error
}

// BaseController implements Controller interface, using the wallet bucket as
// the storage.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under the given address. It
// returns ErrEmptyAccount if no wallet exists. A wallet drained to zero
// still exists and reads as empty coins without an error.
func (c BaseController) Balance(store custody.ReadOnlyKVStore, src custody.Address) (coin.Coins, error) {
	w, err := wallet(store, c.bucket, src)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.Wrapf(ErrEmptyAccount, "address %s", src)
	}
	return w.Coins, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient coins, it fails.
func (c BaseController) MoveCoins(store custody.KVStore, src custody.Address, dest custody.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero transaction amount not allowed")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transaction amount %s", amount)
	}

	sender, err := wallet(store, c.bucket, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrEmptyAccount, "empty account %s", src)
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "funds %s, need %s", sender.Coins, amount)
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}

	recipient, err := wallet(store, c.bucket, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = new(Set)
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// Both updates computed, write both wallets.
	if _, err := c.bucket.Put(store, src, sender); err != nil {
		return errors.Wrap(err, "cannot store sender wallet")
	}
	if _, err := c.bucket.Put(store, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot store recipient wallet")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store custody.KVStore, dest custody.Address, amount coin.Coin) error {
	recipient, err := wallet(store, c.bucket, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = new(Set)
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "invalid wallet after update")
	}
	if _, err := c.bucket.Put(store, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot store wallet")
	}
	return nil
}
