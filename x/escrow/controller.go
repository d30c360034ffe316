package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x/cash"
)

// controller bundles the escrow bucket with the cash mover. All fund
// movement of this package goes through here.
type controller struct {
	cash   cash.Controller
	bucket orm.ModelBucket
}

func newController(cash cash.Controller, bucket orm.ModelBucket) *controller {
	return &controller{
		cash:   cash,
		bucket: bucket,
	}
}

// deposit transfers the full escrow amount from the source wallet to the
// custody address and persists the state change.
func (m *controller) deposit(db custody.KVStore, escrow *Escrow, escrowID []byte, src custody.Address) error {
	if err := m.cash.MoveCoins(db, src, Condition(escrowID).Address(), escrow.Amount); err != nil {
		return errors.Wrap(err, "cannot deposit")
	}
	escrow.State = StateFunded
	if _, err := m.bucket.Put(db, escrowID, escrow); err != nil {
		return errors.Wrap(err, "cannot store escrow")
	}
	return nil
}

// payout moves a piece of the custody balance to the given destination.
// Zero pieces, as produced by truncating fee or split math, are skipped.
func (m *controller) payout(db custody.KVStore, escrowID []byte, dest custody.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if err := m.cash.MoveCoins(db, Condition(escrowID).Address(), dest, amount); err != nil {
		return errors.Wrap(err, "cannot pay out")
	}
	return nil
}

// disburse splits the full escrow amount into the service fee and the net
// pieces per share of the buyer, pays every piece out and moves the record
// to the given terminal state. The pieces always sum to the exact amount,
// so the custody address is emptied.
//
// buyerShare is the buyer's part of the net amount. Nil means everything
// goes to the seller.
func (m *controller) disburse(db custody.KVStore, escrow *Escrow, escrowID []byte, collector custody.Address, buyerShare *custody.Fraction, terminal EscrowState) error {
	fee, err := escrow.Fee()
	if err != nil {
		return errors.Wrap(err, "fee")
	}
	net, err := escrow.Amount.Subtract(fee)
	if err != nil {
		return errors.Wrap(err, "net amount")
	}

	buyerCut := coin.Coin{Ticker: net.Ticker}
	if buyerShare != nil {
		buyerCut, err = net.Share(int64(buyerShare.Numerator), int64(buyerShare.Denominator))
		if err != nil {
			return errors.Wrap(err, "buyer share")
		}
	}
	sellerCut, err := net.Subtract(buyerCut)
	if err != nil {
		return errors.Wrap(err, "seller share")
	}

	if err := m.payout(db, escrowID, escrow.Buyer, buyerCut); err != nil {
		return err
	}
	if err := m.payout(db, escrowID, escrow.Seller, sellerCut); err != nil {
		return err
	}
	if err := m.payout(db, escrowID, collector, fee); err != nil {
		return err
	}

	escrow.State = terminal
	if _, err := m.bucket.Put(db, escrowID, escrow); err != nil {
		return errors.Wrap(err, "cannot store escrow")
	}
	return nil
}
