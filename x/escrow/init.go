package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const optKey = "escrow"

// genesisOptions is the "escrow" section of the genesis file: the fee
// configuration plus optional pre-seeded records.
type genesisOptions struct {
	Fee     FeeConfig       `json:"fee"`
	Escrows []genesisEscrow `json:"escrows"`
}

type genesisEscrow struct {
	Buyer   custody.Address `json:"buyer"`
	Seller  custody.Address `json:"seller"`
	Arbiter custody.Address `json:"arbiter"`
	Memo    string          `json:"memo"`
	Amount  coin.Coin       `json:"amount"`
}

// Initializer fulfils the custody.Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis stores the fee configuration and seeds escrow records, all in
// created state. Record ids are assigned by the bucket sequence, in
// declaration order.
func (Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	var gen genesisOptions
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen.Fee.Collector == nil && gen.Fee.Rate == 0 && len(gen.Escrows) == 0 {
		// no escrow section at all
		return nil
	}
	if err := storeFeeConfig(kv, gen.Fee); err != nil {
		return errors.Wrap(err, "fee configuration")
	}

	bucket := NewBucket()
	for _, g := range gen.Escrows {
		esc := Escrow{
			Buyer:   g.Buyer,
			Seller:  g.Seller,
			Arbiter: g.Arbiter,
			Memo:    g.Memo,
			Amount:  g.Amount,
			State:   StateCreated,
			FeeRate: gen.Fee.Rate,
		}
		if _, err := bucket.Put(kv, nil, &esc); err != nil {
			return errors.Wrap(err, "cannot store genesis escrow")
		}
	}
	return nil
}
