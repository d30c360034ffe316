package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Set is the value stored for each wallet. It keeps all coins owned by a
// single address.
type Set struct {
	Coins coin.Coins
}

var _ orm.Model = (*Set)(nil)

func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Validate requires that all coins are in alphabetical order and valid.
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

// Add modifies the set to add Coin c
func (s *Set) Add(c coin.Coin) error {
	cs, err := s.Coins.Add(c)
	if err != nil {
		return err
	}
	s.Coins = cs
	return nil
}

// Subtract modifies the set to remove Coin c
func (s *Set) Subtract(c coin.Coin) error {
	return s.Add(c.Negative())
}

// NewWalletBucket returns a bucket for keeping track of wallet balances.
// Wallets are stored by the owning address, there is no ID sequence.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("cash")
}

// wallet returns the stored set of the given address. A nil set means no
// wallet exists, which is distinct from an existing wallet holding no
// coins.
func wallet(db custody.ReadOnlyKVStore, bucket orm.ModelBucket, key []byte) (*Set, error) {
	var set Set
	switch err := bucket.One(db, key, &set); {
	case err == nil:
		return &set, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
