package cash

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/codec"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the value persisted for every wallet.
type Set struct {
	Metadata *diap.Metadata `json:"metadata"`
	Coins    coin.Coins     `json:"coins"`
}

var _ orm.CloneableData = (*Set)(nil)

func (s *Set) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, s)
}

// Validate requires that all coins are in alphabetical order and that
// each one is valid.
func (s *Set) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    s.Coins.Clone(),
	}
}

//--- Wallet (Set object, wallet + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key diap.Address) *Wallet {
	return &Wallet{
		key: key,
		value: &Set{
			Metadata: &diap.Metadata{Schema: 1},
		},
	}
}

// WalletWith creates an wallet with a balance
func WalletWith(key diap.Address, coins ...*coin.Coin) (*Wallet, error) {
	wallet := NewWallet(key)
	for _, c := range coins {
		if c == nil {
			continue
		}
		if err := wallet.Add(*c); err != nil {
			return nil, err
		}
	}
	return wallet, nil
}

// Value gets the value stored in the object
func (w Wallet) Value() diap.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if err := diap.Address(w.key).Validate(); err != nil {
		return errors.Wrap(err, "key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a wallet key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy().(*Set),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return w.value.Coins
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	cs, err := w.Coins().Subtract(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// Get returns the wallet stored under the address, or nil.
func (b Bucket) Get(db diap.ReadOnlyKVStore, key diap.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

// Save persists the wallet.
func (b Bucket) Save(db diap.KVStore, wallet *Wallet) error {
	return b.Bucket.Save(db, wallet)
}

// GetOrCreate returns the stored wallet or an empty one ready to use.
func (b Bucket) GetOrCreate(db diap.ReadOnlyKVStore, key diap.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
