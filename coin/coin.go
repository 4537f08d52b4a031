package coin

import (
	"fmt"
	"regexp"

	"github.com/diap-network/diap/errors"
)

// IsCC is the RegExp to ensure valid currency codes.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Coin is an unsigned amount of a single currency. Amounts are kept in
// the smallest indivisible token unit, so no fractional part exists.
type Coin struct {
	// Ticker is the currency code.
	Ticker string `json:"ticker"`
	// Amount is the quantity in the smallest token unit.
	Amount uint64 `json:"amount"`
}

// NewCoin creates a new coin object.
func NewCoin(amount uint64, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount uint64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// Add combines two coins of the same currency. It returns an error on a
// currency mismatch or if the combination would overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "adding %s to %s", o.Ticker, c.Ticker)
	}
	total, err := Add64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: total}, nil
}

// Subtract returns the difference of two coins of the same currency. It
// returns an error on a currency mismatch or if the subtrahend is
// greater than this coin.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "subtracting %s from %s", o.Ticker, c.Ticker)
	}
	rest, err := Sub64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: rest}, nil
}

// Multiply returns the result of a coin value multiplication. This
// method can fail if the result would overflow the maximum coin value.
func (c Coin) Multiply(times uint64) (Coin, error) {
	product, err := Mul64(c.Amount, times)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: product}, nil
}

// Compare returns -1, 0 or 1 depending on the order of two coin values.
// Tickers are compared before the amounts.
func (c Coin) Compare(o Coin) int {
	if c.Ticker < o.Ticker {
		return -1
	}
	if c.Ticker > o.Ticker {
		return 1
	}
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Equals returns true if both coins are the same currency and value.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsZero returns true if the value of the coin is zero.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value of the coin is greater than
// zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsGTE returns true if the value of this coin is at least the value of
// the other. Coins of a different currency are never greater or equal.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if both coins use the same currency.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone returns an independent copy of this coin.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

// Validate ensures the coin is in a valid state.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid currency: %s", c.Ticker)
	}
	return nil
}

// String provides a human readable representation of the coin.
func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Ticker)
}

// Add64 returns the sum of two unsigned values. ErrOverflow is
// returned if the result does not fit the type.
func Add64(a, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// Sub64 returns the difference of two unsigned values. ErrOverflow is
// returned when the subtrahend is greater than the minuend, as unsigned
// arithmetic would otherwise wrap around.
func Sub64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d - %d underflows", a, b)
	}
	return a - b, nil
}

// Mul64 returns the product of two unsigned values. ErrOverflow is
// returned if the result does not fit the type.
func Mul64(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// Div64 returns the integer quotient of two unsigned values, truncated
// toward zero. Division by zero is reported as an input error.
func Div64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, errors.Wrap(errors.ErrInput, "division by zero")
	}
	return a / b, nil
}
