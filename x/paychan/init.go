package paychan

import (
	"github.com/diap-network/diap"
)

const optKey = "paychan"

// genesisConf mirrors the genesis file entry for a single token.
type genesisConf struct {
	Owner      diap.Address `json:"owner"`
	Ticker     string       `json:"ticker"`
	FeeRateBps uint32       `json:"fee_rate_bps"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ diap.Initializer = Initializer{}

// FromGenesis will parse initial settlement configurations from
// genesis and save them to the database.
func (Initializer) FromGenesis(opts diap.Options, kv diap.KVStore) error {
	confs := []genesisConf{}
	if err := opts.ReadOptions(optKey, &confs); err != nil {
		return err
	}
	bucket := NewConfigurationBucket()
	for _, gc := range confs {
		conf := &Configuration{
			Metadata:   &diap.Metadata{Schema: 1},
			Owner:      gc.Owner,
			Ticker:     gc.Ticker,
			FeeRateBps: gc.FeeRateBps,
		}
		if err := bucket.Save(kv, conf); err != nil {
			return err
		}
	}
	return nil
}
