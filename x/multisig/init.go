package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const optKey = "multisig"

// genesisWallet is used to parse wallet declarations from the genesis file.
type genesisWallet struct {
	Owners    []custody.Address `json:"owners"`
	Threshold int32             `json:"threshold"`
}

// Initializer fulfils the custody.Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis will parse initial wallet declarations from genesis and save
// them to the database. Wallet ids are assigned by the bucket sequence, in
// declaration order.
func (Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	wallets := []genesisWallet{}
	if err := opts.ReadOptions(optKey, &wallets); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for _, w := range wallets {
		wallet := Wallet{
			Owners:    w.Owners,
			Threshold: w.Threshold,
		}
		if _, err := bucket.Put(kv, nil, &wallet); err != nil {
			return errors.Wrap(err, "cannot store genesis wallet")
		}
	}
	return nil
}
