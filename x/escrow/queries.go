package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// GetEscrow returns the escrow record with the given id.
func GetEscrow(db custody.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	var esc Escrow
	if err := NewBucket().One(db, id, &esc); err != nil {
		return nil, err
	}
	return &esc, nil
}

// EscrowCount returns the number of escrow records ever created. Records
// are never deleted, so this equals the latest sequence value.
func EscrowCount(db custody.ReadOnlyKVStore) int64 {
	seq := orm.NewSequence(BucketName, SequenceName)
	count, _ := seq.Latest(db)
	return count
}

// ServiceFeeRate returns the configured fee rate in basis points. Records
// snapshot the rate at creation, so existing escrows may carry a different
// one.
func ServiceFeeRate(db custody.ReadOnlyKVStore) (int32, error) {
	conf, err := loadFeeConfig(db)
	if err != nil {
		return 0, err
	}
	return conf.Rate, nil
}

// ContractBalance sums the amounts of all records currently holding funds,
// that is in funded or disputed state. This must equal the total of the
// custody address balances.
func ContractBalance(db custody.ReadOnlyKVStore) (coin.Coins, error) {
	var total coin.Coins
	iter := NewBucket().IterAll(db)
	defer iter.Release()
	for {
		var esc Escrow
		switch err := iter.LoadNext(&esc); {
		case err == nil:
			// pass
		case orm.ErrIteratorDone.Is(err):
			return total, nil
		default:
			return nil, errors.Wrap(err, "cannot iterate escrows")
		}
		if esc.State != StateFunded && esc.State != StateDisputed {
			continue
		}
		var err error
		total, err = total.Add(esc.Amount)
		if err != nil {
			return nil, errors.Wrap(err, "cannot sum amounts")
		}
	}
}
