package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use custody.Address, so address in hex, not base64
type GenesisAccount struct {
	Address custody.Address `json:"address"`
	Coins   coin.Coins      `json:"coins"`
}

// Initializer fulfils the custody.Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account address")
		}
		coins, err := coin.NormalizeCoins(acct.Coins)
		if err != nil {
			return errors.Wrap(err, "genesis account coins")
		}
		if _, err := bucket.Put(kv, acct.Address, &Set{Coins: coins}); err != nil {
			return errors.Wrap(err, "cannot store genesis account")
		}
	}
	return nil
}
