package vesting

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/x/funds"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tranche.Initializer = (*Initializer)(nil)

// FromGenesis initializes the vesting pool from genesis
// configuration:
//
//   "vesting": {
//     "admin": "636f6e646974696f6e",
//     "activation_delay": "100s"
//   }
//
// The activation delay is optional and defaults to 100 seconds.
func (*Initializer) FromGenesis(opts tranche.Options, db tranche.KVStore) error {
	var conf struct {
		Admin           tranche.Address      `json:"admin"`
		ActivationDelay tranche.UnixDuration `json:"activation_delay"`
	}
	if err := opts.ReadOptions("vesting", &conf); err != nil {
		return errors.Wrap(err, "cannot load vesting genesis options")
	}
	if conf.Admin == nil {
		return nil
	}
	if err := conf.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	control := NewController(funds.NewController())
	return control.InitPool(db, conf.Admin, conf.ActivationDelay)
}
