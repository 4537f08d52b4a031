package paychan

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/orm"
)

// MaxFeeRateBps caps the settlement fee rate at 1%.
const MaxFeeRateBps uint32 = 100

var _ orm.CloneableData = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if !coin.IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid ticker: %q", c.Ticker)
	}
	if c.FeeRateBps > MaxFeeRateBps {
		return errors.Wrapf(errors.ErrInput, "fee rate %d above maximum %d", c.FeeRateBps, MaxFeeRateBps)
	}
	return nil
}

func (c Configuration) Copy() orm.CloneableData {
	cpy := c
	cpy.Metadata = c.Metadata.Copy()
	return &cpy
}

// ConfigurationBucket stores one Configuration per token ticker.
type ConfigurationBucket struct {
	orm.Bucket
}

func NewConfigurationBucket() ConfigurationBucket {
	return ConfigurationBucket{
		Bucket: orm.NewBucket("paychcfg", orm.NewSimpleObj(nil, &Configuration{})),
	}
}

// Save persists a configuration under its ticker.
func (b ConfigurationBucket) Save(db diap.KVStore, c *Configuration) error {
	obj := orm.NewSimpleObj([]byte(c.Ticker), c)
	return b.Bucket.Save(db, obj)
}

// GetConfiguration returns the configuration for given ticker or
// ErrNotFound. Channels can only be opened for configured tokens.
func (b ConfigurationBucket) GetConfiguration(db diap.ReadOnlyKVStore, ticker string) (*Configuration, error) {
	obj, err := b.Get(db, []byte(ticker))
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no configuration for %q", ticker)
	}
	c, ok := obj.Value().(*Configuration)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return c, nil
}
