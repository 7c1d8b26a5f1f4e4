package funds

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet is sensible. Any balance, including
// zero, is allowed.
func (w *Wallet) Validate() error {
	return nil
}

// Copy produces a new wallet with the same balance.
func (w *Wallet) Copy() orm.Model {
	return &Wallet{
		Balance: w.Balance,
	}
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the
// owner address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("wallet", &Wallet{})
}

// walletKey returns the bucket key for the wallet of given address.
func walletKey(addr tranche.Address) ([]byte, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "wallet owner")
	}
	return addr, nil
}
