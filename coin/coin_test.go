package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covault/covault/errors"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"normal":           {NewCoin(1, 0, "COV"), nil},
		"negative":         {NewCoin(-100, -50, "COV"), nil},
		"zero":             {NewCoin(0, 0, "ETH"), nil},
		"four letters":     {NewCoin(12, 0, "ATOM"), nil},
		"missing ticker":   {NewCoin(1, 2, ""), errors.ErrCurrency},
		"lowercase ticker": {NewCoin(1, 2, "eth"), errors.ErrCurrency},
		"long ticker":      {NewCoin(1, 2, "STELLAR"), errors.ErrCurrency},
		"whole overflow":   {NewCoin(MaxInt+1, 0, "COV"), errors.ErrOverflow},
		"frac overflow":    {NewCoin(0, FracUnit, "COV"), errors.ErrOverflow},
		"mismatched sign":  {NewCoin(5, -20, "COV"), errors.ErrState},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}

func TestCoinAddSubtract(t *testing.T) {
	a := NewCoin(2, 500000000, "COV")
	b := NewCoin(1, 700000000, "COV")

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, NewCoin(4, 200000000, "COV"), sum)

	diff, err := a.Subtract(b)
	assert.NoError(t, err)
	assert.Equal(t, NewCoin(0, 800000000, "COV"), diff)

	// subtracting below zero is fine, sign is carried
	neg, err := b.Subtract(a)
	assert.NoError(t, err)
	assert.True(t, neg.Equals(diff.Negative()))
	assert.False(t, neg.IsNonNegative())

	// zero value without ticker adopts the other currency
	sum, err = NewCoin(0, 0, "").Add(a)
	assert.NoError(t, err)
	assert.Equal(t, a, sum)

	// mixing currencies is rejected
	_, err = a.Add(NewCoin(1, 0, "ETH"))
	assert.True(t, errors.ErrCurrency.Is(err))
}

func TestCoinCompare(t *testing.T) {
	a := NewCoin(5, 0, "COV")
	b := NewCoin(4, 999999999, "COV")

	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	assert.True(t, a.IsGTE(b))
	assert.True(t, a.IsGTE(a))
	assert.False(t, b.IsGTE(a))
	// different currency is never GTE
	assert.False(t, a.IsGTE(NewCoin(1, 0, "ETH")))
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin(0, 0, "COV").IsZero())
	assert.True(t, NewCoin(0, 1, "COV").IsPositive())
	assert.False(t, NewCoin(0, -1, "COV").IsPositive())
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(NewCoinp(0, 0, "COV")))
	assert.False(t, IsEmpty(NewCoinp(1, 0, "COV")))
}

func TestCoinClone(t *testing.T) {
	var nilCoin *Coin
	assert.Nil(t, nilCoin.Clone())

	orig := NewCoinp(1, 2, "COV")
	cpy := orig.Clone()
	cpy.Whole = 9
	assert.Equal(t, int64(1), orig.Whole)
}
