package coin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diap-network/diap/errors"
)

func TestCoinAdd(t *testing.T) {
	sum, err := NewCoin(4, "DIAP").Add(NewCoin(6, "DIAP"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(10, "DIAP"), sum)

	_, err = NewCoin(4, "DIAP").Add(NewCoin(6, "DOGE"))
	assert.True(t, errors.ErrAmount.Is(err))

	_, err = NewCoin(math.MaxUint64, "DIAP").Add(NewCoin(1, "DIAP"))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinSubtract(t *testing.T) {
	rest, err := NewCoin(10, "DIAP").Subtract(NewCoin(4, "DIAP"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(6, "DIAP"), rest)

	_, err = NewCoin(4, "DIAP").Subtract(NewCoin(10, "DIAP"))
	assert.True(t, errors.ErrOverflow.Is(err))

	_, err = NewCoin(4, "DIAP").Subtract(NewCoin(1, "DOGE"))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCoinMultiply(t *testing.T) {
	product, err := NewCoin(1000, "DIAP").Multiply(50)
	require.NoError(t, err)
	assert.Equal(t, NewCoin(50000, "DIAP"), product)

	product, err = NewCoin(1000, "DIAP").Multiply(0)
	require.NoError(t, err)
	assert.True(t, product.IsZero())

	_, err = NewCoin(math.MaxUint64, "DIAP").Multiply(2)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCheckedHelpers(t *testing.T) {
	_, err := Sub64(3, 5)
	assert.True(t, errors.ErrOverflow.Is(err))

	quotient, err := Div64(1000*50, 10000)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), quotient)

	// Integer division truncates toward zero.
	quotient, err = Div64(999, 10000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), quotient)

	_, err = Div64(1, 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid coin":             {coin: NewCoin(1, "DIAP"), wantErr: nil},
		"valid four char ticker": {coin: NewCoin(1, "DOGE"), wantErr: nil},
		"missing ticker":         {coin: NewCoin(1, ""), wantErr: errors.ErrAmount},
		"lowercase ticker":       {coin: NewCoin(1, "diap"), wantErr: errors.ErrAmount},
		"too long ticker":        {coin: NewCoin(1, "TOOLONG"), wantErr: errors.ErrAmount},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestCoinCompare(t *testing.T) {
	assert.Equal(t, -1, NewCoin(1, "DIAP").Compare(NewCoin(2, "DIAP")))
	assert.Equal(t, 1, NewCoin(2, "DIAP").Compare(NewCoin(1, "DIAP")))
	assert.Equal(t, 0, NewCoin(2, "DIAP").Compare(NewCoin(2, "DIAP")))
	// Ticker dominates the amount.
	assert.Equal(t, -1, NewCoin(5, "AAA").Compare(NewCoin(1, "BBB")))
}
