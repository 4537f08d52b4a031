package cash

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
)

// Controller is the functionality needed by other extensions to move
// funds around. This can be implemented directly or with mocks for
// tests.
type Controller interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. This operation is atomic.
	MoveCoins(store diap.KVStore, src diap.Address, dest diap.Address, amount coin.Coin) error

	// Balance returns the amount of funds stored under given account
	// address.
	Balance(store diap.ReadOnlyKVStore, src diap.Address) (coin.Coins, error)
}

// CashController is the standard implementation of the Controller,
// using a cash.Bucket to persist wallets.
type CashController struct {
	bucket Bucket
}

var _ Controller = CashController{}

// NewController returns a controller that writes to the given bucket.
func NewController(bucket Bucket) CashController {
	return CashController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient coins, it fails.
func (c CashController) MoveCoins(store diap.KVStore, src diap.Address, dest diap.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// Balance returns the coins stored under the given address. Missing
// wallets are reported as an ErrEmpty.
func (c CashController) Balance(store diap.ReadOnlyKVStore, src diap.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	return wallet.Coins(), nil
}
