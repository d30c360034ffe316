package coin

import (
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(5, "IOV"),
		NewCoin(2, "ETH"),
		NewCoin(3, "IOV"),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Count())
	// sorted by ticker
	assert.True(t, cs.Equals(Coins{NewCoinp(2, "ETH"), NewCoinp(8, "IOV")}))
}

func TestCoinsAdd(t *testing.T) {
	var cs Coins

	cs, err := cs.Add(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.True(t, cs.Contains(NewCoin(5, "IOV")))
	assert.False(t, cs.Contains(NewCoin(6, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, "ETH")))

	// adding a negative amount consumes the balance
	cs, err = cs.Subtract(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
}

func TestCoinsSubtractGoesNegative(t *testing.T) {
	cs, err := CombineCoins(NewCoin(2, "IOV"))
	require.NoError(t, err)

	cs, err = cs.Subtract(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.False(t, cs.IsNonNegative())
	assert.True(t, cs.Contains(NewCoin(-3, "IOV")))
}

func TestCoinsCombine(t *testing.T) {
	a, err := CombineCoins(NewCoin(1, "ETH"), NewCoin(2, "IOV"))
	require.NoError(t, err)
	b, err := CombineCoins(NewCoin(3, "IOV"), NewCoin(4, "BTC"))
	require.NoError(t, err)

	sum, err := a.Combine(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(Coins{
		NewCoinp(4, "BTC"),
		NewCoinp(1, "ETH"),
		NewCoinp(5, "IOV"),
	}))

	// combining must not modify the inputs
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, 2, b.Count())
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins   Coins
		wantErr *errors.Error
	}{
		"empty":        {coins: nil},
		"valid sorted": {coins: Coins{NewCoinp(1, "ETH"), NewCoinp(2, "IOV")}},
		"unsorted":     {coins: Coins{NewCoinp(2, "IOV"), NewCoinp(1, "ETH")}, wantErr: errors.ErrState},
		"zero coin":    {coins: Coins{NewCoinp(0, "IOV")}, wantErr: errors.ErrState},
		"bad ticker":   {coins: Coins{NewCoinp(1, "x")}, wantErr: errors.ErrCurrency},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coins.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestNormalizeCoins(t *testing.T) {
	// already normalized collections are returned as given
	cs := Coins{NewCoinp(1, "ETH"), NewCoinp(2, "IOV")}
	got, err := NormalizeCoins(cs)
	require.NoError(t, err)
	assert.True(t, cs.Equals(got))

	// duplicates are merged and the result sorted
	got, err = NormalizeCoins(Coins{
		NewCoinp(3, "IOV"),
		NewCoinp(1, "ETH"),
		NewCoinp(4, "IOV"),
		NewCoinp(0, "BTC"),
	})
	require.NoError(t, err)
	assert.True(t, got.Equals(Coins{NewCoinp(1, "ETH"), NewCoinp(7, "IOV")}))

	// zero coins normalize to nil
	got, err = NormalizeCoins(Coins{NewCoinp(0, "IOV")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCoinsClone(t *testing.T) {
	orig := Coins{NewCoinp(1, "IOV")}
	cp := orig.Clone()
	cp[0].Amount = 100
	assert.Equal(t, int64(1), orig[0].Amount)
}
