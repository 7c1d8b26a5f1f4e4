package funds

import (
	"math"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/orm"
)

// Controller is the functionality needed by other extensions that
// move tokens around. This is implemented here and can be passed
// into other handlers, most notably x/vesting.
type Controller interface {
	// Balance returns the amount held by given address. A missing
	// wallet is reported as a zero balance.
	Balance(db tranche.ReadOnlyKVStore, addr tranche.Address) (uint64, error)
	// MoveFunds transfers amount from source to destination.
	MoveFunds(db tranche.KVStore, source, destination tranche.Address, amount uint64) error
	// IssueFunds creates amount out of nothing and credits it to
	// the destination wallet.
	IssueFunds(db tranche.KVStore, destination tranche.Address, amount uint64) error
	// BurnFunds destroys amount held by the source wallet.
	BurnFunds(db tranche.KVStore, source tranche.Address, amount uint64) error
}

// BaseController is a simple implementation of Controller that
// operates on a wallet bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the token balance of the given address. An address
// without a wallet has a zero balance.
func (c BaseController) Balance(db tranche.ReadOnlyKVStore, addr tranche.Address) (uint64, error) {
	key, err := walletKey(addr)
	if err != nil {
		return 0, err
	}
	var w Wallet
	switch err := c.bucket.One(db, key, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

// MoveFunds transfers amount between two wallets. It fails without
// modifying any wallet if the source holds less than amount or if the
// destination balance would overflow.
func (c BaseController) MoveFunds(db tranche.KVStore, source, destination tranche.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "transfer amount must be positive")
	}
	srcKey, err := walletKey(source)
	if err != nil {
		return err
	}
	dstKey, err := walletKey(destination)
	if err != nil {
		return err
	}

	var src Wallet
	if err := c.bucket.One(db, srcKey, &src); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrap(errors.ErrInsufficientAmount, "no source wallet")
		}
		return errors.Wrap(err, "cannot load source wallet")
	}
	if src.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "only %d available", src.Balance)
	}

	var dst Wallet
	if err := c.bucket.One(db, dstKey, &dst); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load destination wallet")
	}
	if dst.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	src.Balance -= amount
	dst.Balance += amount
	if err := c.bucket.Put(db, srcKey, &src); err != nil {
		return errors.Wrap(err, "cannot store source wallet")
	}
	if err := c.bucket.Put(db, dstKey, &dst); err != nil {
		return errors.Wrap(err, "cannot store destination wallet")
	}
	return nil
}

// IssueFunds mints amount into the destination wallet, creating the
// wallet if needed.
func (c BaseController) IssueFunds(db tranche.KVStore, destination tranche.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "issued amount must be positive")
	}
	key, err := walletKey(destination)
	if err != nil {
		return err
	}
	var w Wallet
	if err := c.bucket.One(db, key, &w); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load wallet")
	}
	if w.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Balance += amount
	return c.bucket.Put(db, key, &w)
}

// BurnFunds destroys amount held by the source wallet.
func (c BaseController) BurnFunds(db tranche.KVStore, source tranche.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "burned amount must be positive")
	}
	key, err := walletKey(source)
	if err != nil {
		return err
	}
	var w Wallet
	if err := c.bucket.One(db, key, &w); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrap(errors.ErrInsufficientAmount, "no wallet")
		}
		return errors.Wrap(err, "cannot load wallet")
	}
	if w.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "only %d available", w.Balance)
	}
	w.Balance -= amount
	return c.bucket.Put(db, key, &w)
}
