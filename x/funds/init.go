package funds

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tranche.Initializer = (*Initializer)(nil)

// FromGenesis initializes wallet balances from genesis configuration:
//
//   "funds": [
//     {"address": "636f6e646974696f6e", "balance": 123456}
//   ]
func (*Initializer) FromGenesis(opts tranche.Options, db tranche.KVStore) error {
	var accounts []struct {
		Address tranche.Address `json:"address"`
		Balance uint64          `json:"balance"`
	}
	if err := opts.ReadOptions("funds", &accounts); err != nil {
		return errors.Wrap(err, "cannot load funds genesis options")
	}

	control := NewController()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		if acc.Balance == 0 {
			continue
		}
		if err := control.IssueFunds(db, acc.Address, acc.Balance); err != nil {
			return errors.Wrapf(err, "account #%d funding", i)
		}
	}
	return nil
}
