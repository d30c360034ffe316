package custody

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionValidate(t *testing.T) {
	assert.NoError(t, Fraction{Numerator: 1, Denominator: 2}.Validate())
	assert.NoError(t, Fraction{Numerator: 0, Denominator: 0}.Validate())
	err := Fraction{Numerator: 1, Denominator: 0}.Validate()
	assert.True(t, errors.ErrState.Is(err))
}

func TestFractionNormalize(t *testing.T) {
	cases := map[string]struct {
		src  Fraction
		want Fraction
	}{
		"already reduced": {
			src:  Fraction{Numerator: 1, Denominator: 3},
			want: Fraction{Numerator: 1, Denominator: 3},
		},
		"reducible": {
			src:  Fraction{Numerator: 4, Denominator: 8},
			want: Fraction{Numerator: 1, Denominator: 2},
		},
		"whole": {
			src:  Fraction{Numerator: 10, Denominator: 10},
			want: Fraction{Numerator: 1, Denominator: 1},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.src.Normalize())
		})
	}
}

func TestFractionString(t *testing.T) {
	assert.Equal(t, "1/2", (&Fraction{Numerator: 1, Denominator: 2}).String())
	assert.Equal(t, "3", (&Fraction{Numerator: 3, Denominator: 1}).String())
	assert.Equal(t, "0", (&Fraction{}).String())
	assert.Equal(t, "nil", (*Fraction)(nil).String())
}

func TestFractionUnmarshalJSON(t *testing.T) {
	var f Fraction
	require.NoError(t, json.Unmarshal([]byte(`"2/3"`), &f))
	assert.Equal(t, Fraction{Numerator: 2, Denominator: 3}, f)

	require.NoError(t, json.Unmarshal([]byte(`"7"`), &f))
	assert.Equal(t, Fraction{Numerator: 7, Denominator: 1}, f)

	require.NoError(t, json.Unmarshal([]byte(`{"numerator": 1, "denominator": 4}`), &f))
	assert.Equal(t, Fraction{Numerator: 1, Denominator: 4}, f)

	assert.Error(t, json.Unmarshal([]byte(`"one half"`), &f))
}
