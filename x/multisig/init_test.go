package multisig

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisWallets(t *testing.T) {
	a := custodytest.NewCondition().Address()
	b := custodytest.NewCondition().Address()
	genesis := fmt.Sprintf(`[
		{"owners": ["%s", "%s"], "threshold": 2}
	]`, a, b)

	opts := custody.Options{"multisig": json.RawMessage(genesis)}
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	wallet, err := GetWallet(db, orm.EncodeSequence(1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), wallet.Threshold)
	assert.True(t, wallet.IsOwner(a))
	assert.True(t, wallet.IsOwner(b))
}

func TestGenesisWalletInvalid(t *testing.T) {
	a := custodytest.NewCondition().Address()
	genesis := fmt.Sprintf(`[ {"owners": ["%s"], "threshold": 5} ]`, a)

	opts := custody.Options{"multisig": json.RawMessage(genesis)}
	db := store.MemStore()
	err := Initializer{}.FromGenesis(opts, db)
	assert.True(t, ErrInvalidThreshold.Is(err))
}
