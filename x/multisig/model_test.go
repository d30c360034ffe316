package multisig

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
)

func TestWalletValidate(t *testing.T) {
	a := custodytest.NewCondition().Address()
	b := custodytest.NewCondition().Address()

	cases := map[string]struct {
		wallet  Wallet
		wantErr *errors.Error
	}{
		"valid": {
			wallet: Wallet{Owners: []custody.Address{a, b}, Threshold: 2},
		},
		"single owner": {
			wallet: Wallet{Owners: []custody.Address{a}, Threshold: 1},
		},
		"no owners": {
			wallet:  Wallet{Threshold: 1},
			wantErr: errors.ErrModel,
		},
		"duplicate owner": {
			wallet:  Wallet{Owners: []custody.Address{a, a}, Threshold: 1},
			wantErr: errors.ErrDuplicate,
		},
		"invalid owner address": {
			wallet:  Wallet{Owners: []custody.Address{{0x01}}, Threshold: 1},
			wantErr: errors.ErrInput,
		},
		"zero threshold": {
			wallet:  Wallet{Owners: []custody.Address{a, b}, Threshold: 0},
			wantErr: ErrInvalidThreshold,
		},
		"threshold above owner count": {
			wallet:  Wallet{Owners: []custody.Address{a, b}, Threshold: 3},
			wantErr: ErrInvalidThreshold,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.wallet.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestWalletIsOwner(t *testing.T) {
	a := custodytest.NewCondition().Address()
	b := custodytest.NewCondition().Address()
	stranger := custodytest.NewCondition().Address()

	w := Wallet{Owners: []custody.Address{a, b}, Threshold: 1}
	assert.True(t, w.IsOwner(a))
	assert.True(t, w.IsOwner(b))
	assert.False(t, w.IsOwner(stranger))
}

func TestTransactionConfirmations(t *testing.T) {
	a := custodytest.NewCondition().Address()
	b := custodytest.NewCondition().Address()

	tx := Transaction{
		WalletID:    []byte{0, 0, 0, 0, 0, 0, 0, 1},
		Destination: custodytest.NewCondition().Address(),
		Amount:      coin.NewCoin(10, "IOV"),
	}
	assert.Equal(t, 0, tx.ConfirmationCount())
	assert.False(t, tx.Confirmed(a))

	tx.Confirmations = append(tx.Confirmations, a)
	assert.Equal(t, 1, tx.ConfirmationCount())
	assert.True(t, tx.Confirmed(a))
	assert.False(t, tx.Confirmed(b))
}

func TestMultiSigCondition(t *testing.T) {
	id := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	addr := MultiSigCondition(id).Address()
	assert.NoError(t, addr.Validate())
	// derivation is stable
	assert.True(t, addr.Equals(MultiSigCondition(id).Address()))
	// and unique per wallet
	other := MultiSigCondition([]byte{0, 0, 0, 0, 0, 0, 0, 2}).Address()
	assert.False(t, addr.Equals(other))
}
