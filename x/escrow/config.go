package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

// configPkg names the configuration singleton of this package.
const configPkg = "escrow"

// FeeConfig is the engine configuration: the service fee rate in basis
// points and the address collecting the fees. New records snapshot the rate
// at creation.
type FeeConfig struct {
	Collector custody.Address `json:"collector"`
	Rate      int32           `json:"rate"`
}

func (c FeeConfig) Validate() error {
	if err := c.Collector.Validate(); err != nil {
		return errors.Wrap(err, "collector")
	}
	if c.Rate < 0 || int64(c.Rate) > feeDenominator {
		return errors.Wrapf(errors.ErrInput, "rate %d out of basis point range", c.Rate)
	}
	return nil
}

func (c FeeConfig) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *FeeConfig) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func storeFeeConfig(db custody.KVStore, c FeeConfig) error {
	return gconf.Save(db, configPkg, &c)
}

func loadFeeConfig(db custody.ReadOnlyKVStore) (FeeConfig, error) {
	var c FeeConfig
	if err := gconf.Load(db, configPkg, &c); err != nil {
		return c, errors.Wrap(err, "fee configuration")
	}
	return c, nil
}
