package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid coin":        {coin: NewCoin(42, "IOV")},
		"valid negative":    {coin: NewCoin(-42, "IOV")},
		"four char ticker":  {coin: NewCoin(1, "ABCD")},
		"missing ticker":    {coin: NewCoin(1, ""), wantErr: errors.ErrCurrency},
		"lowercase ticker":  {coin: NewCoin(1, "iov"), wantErr: errors.ErrCurrency},
		"ticker too long":   {coin: NewCoin(1, "ABCDE"), wantErr: errors.ErrCurrency},
		"amount too big":    {coin: NewCoin(MaxAmount+1, "IOV"), wantErr: errors.ErrOverflow},
		"amount too small":  {coin: NewCoin(MinAmount-1, "IOV"), wantErr: errors.ErrOverflow},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestCoinAdd(t *testing.T) {
	sum, err := NewCoin(2, "IOV").Add(NewCoin(3, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(5, "IOV"), sum)

	// mismatched currency
	_, err = NewCoin(2, "IOV").Add(NewCoin(3, "ETH"))
	assert.True(t, errors.ErrCurrency.Is(err))

	// a zero coin without a ticker is neutral
	sum, err = Coin{}.Add(NewCoin(3, "ETH"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(3, "ETH"), sum)

	// overflow
	_, err = NewCoin(MaxAmount, "IOV").Add(NewCoin(1, "IOV"))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinSubtract(t *testing.T) {
	res, err := NewCoin(5, "IOV").Subtract(NewCoin(2, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(3, "IOV"), res)

	// subtraction may go negative
	res, err = NewCoin(2, "IOV").Subtract(NewCoin(5, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(-3, "IOV"), res)

	c := NewCoin(7, "IOV")
	sum, err := c.Add(c.Negative())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestCoinShare(t *testing.T) {
	cases := map[string]struct {
		coin        Coin
		num, denom  int64
		want        Coin
		wantErr     *errors.Error
	}{
		"exact":             {coin: NewCoin(10000, "IOV"), num: 250, denom: 10000, want: NewCoin(250, "IOV")},
		"truncates down":    {coin: NewCoin(999, "IOV"), num: 250, denom: 10000, want: NewCoin(24, "IOV")},
		"small amount":      {coin: NewCoin(3, "IOV"), num: 250, denom: 10000, want: NewCoin(0, "IOV")},
		"full share":        {coin: NewCoin(77, "IOV"), num: 1, denom: 1, want: NewCoin(77, "IOV")},
		"zero numerator":    {coin: NewCoin(77, "IOV"), num: 0, denom: 10000, want: NewCoin(0, "IOV")},
		"zero denominator":  {coin: NewCoin(77, "IOV"), num: 1, denom: 0, wantErr: errors.ErrInput},
		"negative numerator": {coin: NewCoin(77, "IOV"), num: -1, denom: 2, wantErr: errors.ErrInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.coin.Share(tc.num, tc.denom)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinMultiply(t *testing.T) {
	res, err := NewCoin(3, "IOV").Multiply(4)
	require.NoError(t, err)
	assert.Equal(t, NewCoin(12, "IOV"), res)

	_, err = NewCoin(MaxAmount, "IOV").Multiply(2)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinCompare(t *testing.T) {
	assert.Equal(t, 1, NewCoin(2, "IOV").Compare(NewCoin(1, "IOV")))
	assert.Equal(t, -1, NewCoin(1, "IOV").Compare(NewCoin(2, "IOV")))
	assert.Equal(t, 0, NewCoin(2, "IOV").Compare(NewCoin(2, "IOV")))

	assert.True(t, NewCoin(2, "IOV").IsGTE(NewCoin(2, "IOV")))
	assert.True(t, NewCoin(3, "IOV").IsGTE(NewCoin(2, "IOV")))
	assert.False(t, NewCoin(1, "IOV").IsGTE(NewCoin(2, "IOV")))
	assert.False(t, NewCoin(3, "IOV").IsGTE(NewCoin(2, "ETH")))
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin(0, "IOV").IsZero())
	assert.True(t, NewCoin(1, "IOV").IsPositive())
	assert.False(t, NewCoin(-1, "IOV").IsPositive())
	assert.True(t, NewCoin(0, "IOV").IsNonNegative())
	assert.False(t, NewCoin(-1, "IOV").IsNonNegative())
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "42 IOV", NewCoin(42, "IOV").String())
	assert.Equal(t, "-7 ETH", NewCoin(-7, "ETH").String())
}

func TestCoinJSONUnmarshal(t *testing.T) {
	cases := map[string]struct {
		json string
		want Coin
	}{
		"human format":          {json: `"42 IOV"`, want: NewCoin(42, "IOV")},
		"human format negative": {json: `"-42 IOV"`, want: NewCoin(-42, "IOV")},
		"lowercase ticker":      {json: `"1 iov"`, want: NewCoin(1, "IOV")},
		"object format":         {json: `{"ticker": "IOV", "amount": 42}`, want: NewCoin(42, "IOV")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var c Coin
			require.NoError(t, json.Unmarshal([]byte(tc.json), &c))
			assert.Equal(t, tc.want, c)
		})
	}

	var c Coin
	assert.Error(t, json.Unmarshal([]byte(`"42IOVX garbage"`), &c))
}
