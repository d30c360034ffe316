package escrow

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisEscrows(t *testing.T) {
	collector := custodytest.NewCondition().Address()
	buyer := custodytest.NewCondition().Address()
	seller := custodytest.NewCondition().Address()
	arbiter := custodytest.NewCondition().Address()

	genesis := fmt.Sprintf(`{
		"fee": {"collector": "%s", "rate": 250},
		"escrows": [
			{
				"buyer": "%s",
				"seller": "%s",
				"arbiter": "%s",
				"memo": "carried over",
				"amount": {"ticker": "IOV", "amount": 1000}
			}
		]
	}`, collector, buyer, seller, arbiter)

	opts := custody.Options{"escrow": json.RawMessage(genesis)}
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	conf, err := loadFeeConfig(db)
	require.NoError(t, err)
	assert.True(t, conf.Collector.Equals(collector))
	assert.Equal(t, int32(250), conf.Rate)

	esc, err := GetEscrow(db, orm.EncodeSequence(1))
	require.NoError(t, err)
	assert.Equal(t, StateCreated, esc.State)
	assert.True(t, esc.Buyer.Equals(buyer))
	assert.True(t, esc.Seller.Equals(seller))
	assert.True(t, esc.Arbiter.Equals(arbiter))
	assert.Equal(t, "carried over", esc.Memo)
	assert.Equal(t, coin.NewCoin(1000, "IOV"), esc.Amount)
	assert.Equal(t, int32(250), esc.FeeRate)
	assert.Equal(t, int64(1), EscrowCount(db))
}

func TestGenesisNoOptions(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(custody.Options{}, db))

	// nothing was written at all
	_, err := loadFeeConfig(db)
	assert.Error(t, err)
}

func TestGenesisInvalidFeeRate(t *testing.T) {
	collector := custodytest.NewCondition().Address()
	genesis := fmt.Sprintf(`{"fee": {"collector": "%s", "rate": 10001}}`, collector)
	opts := custody.Options{"escrow": json.RawMessage(genesis)}
	db := store.MemStore()
	assert.Error(t, Initializer{}.FromGenesis(opts, db))
}
