package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisAccounts(t *testing.T) {
	addr := custodytest.NewCondition().Address()
	genesis := fmt.Sprintf(`[
		{"address": "%s", "coins": [{"ticker": "IOV", "amount": 888}]}
	]`, addr)

	opts := custody.Options{"cash": json.RawMessage(genesis)}
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	control := NewController(NewWalletBucket())
	cs, err := control.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, cs.Contains(coin.NewCoin(888, "IOV")))
}

func TestGenesisNoOptions(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(custody.Options{}, db))
}

func TestGenesisInvalidAddress(t *testing.T) {
	genesis := `[ {"address": "foobar", "coins": []} ]`
	opts := custody.Options{"cash": json.RawMessage(genesis)}
	db := store.MemStore()
	assert.Error(t, Initializer{}.FromGenesis(opts, db))
}
