package app

import (
	"github.com/iov-one/tranche"
)

// ChainInitializers lets you initialize many extensions with one
// function.
func ChainInitializers(inits ...tranche.Initializer) tranche.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []tranche.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts tranche.Options, db tranche.KVStore) error {
	for _, init := range c.inits {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
