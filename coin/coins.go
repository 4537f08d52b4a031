package coin

import (
	"sort"

	"github.com/diap-network/diap/errors"
)

// Coins is a set of coins, one per currency, sorted by ticker.
type Coins []*Coin

// NormalizeCoins builds a sorted Coins set from any number of coins.
// Coins of the same currency are combined, zero values are dropped.
func NormalizeCoins(cs ...Coin) (Coins, error) {
	var set Coins
	var err error
	for _, c := range cs {
		set, err = set.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Get returns the coin of the given currency, or nil if the set holds
// none of it.
func (cs Coins) Get(ticker string) *Coin {
	for _, c := range cs {
		if c.Ticker == ticker {
			return c
		}
	}
	return nil
}

// Add returns a new set with the given coin included. The input set is
// not modified. A resulting zero amount removes the currency from the
// set, keeping the set minimal.
func (cs Coins) Add(add Coin) (Coins, error) {
	held := cs.Get(add.Ticker)
	if held != nil {
		var err error
		add, err = held.Add(add)
		if err != nil {
			return nil, err
		}
	}

	res := make(Coins, 0, len(cs)+1)
	for _, c := range cs {
		if c.Ticker == add.Ticker {
			continue
		}
		res = append(res, c.Clone())
	}
	if !add.IsZero() {
		res = append(res, &add)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Ticker < res[j].Ticker
	})
	return res, nil
}

// Subtract returns a new set with the given coin value removed. It
// fails when the set does not contain enough of the currency.
func (cs Coins) Subtract(sub Coin) (Coins, error) {
	held := cs.Get(sub.Ticker)
	if held == nil {
		return nil, errors.Wrapf(errors.ErrAmount, "no %s to subtract", sub.Ticker)
	}
	rest, err := held.Subtract(sub)
	if err != nil {
		return nil, err
	}

	res := make(Coins, 0, len(cs))
	for _, c := range cs {
		if c.Ticker == sub.Ticker {
			continue
		}
		res = append(res, c.Clone())
	}
	if !rest.IsZero() {
		res = append(res, &rest)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Ticker < res[j].Ticker
	})
	return res, nil
}

// Contains returns true if the set holds at least the given coin value.
func (cs Coins) Contains(c Coin) bool {
	held := cs.Get(c.Ticker)
	return held != nil && held.IsGTE(c)
}

// IsEmpty returns true if the set holds no value at all.
func (cs Coins) IsEmpty() bool {
	for _, c := range cs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold exactly the same values.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the set.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Validate requires all coins to be valid, sorted by ticker, unique per
// currency and non-zero.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrAmount, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero %s entry", c.Ticker)
		}
		if c.Ticker <= last {
			return errors.Wrapf(errors.ErrAmount, "unsorted entry: %s", c.Ticker)
		}
		last = c.Ticker
	}
	return nil
}
