package vesting

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/orm"
	"github.com/iov-one/tranche/x/funds"
)

// defaultActivationDelay is used when the pool is initialized without
// an explicit activation delay.
const defaultActivationDelay tranche.UnixDuration = 100

// Controller implements the vesting business logic on top of the
// pool and stream buckets. Token movements are delegated to the
// funds controller so that custody tokens never leave the ledger.
type Controller struct {
	pools   orm.ModelBucket
	streams orm.ModelBucket
	bank    funds.Controller
}

// NewController returns a controller using the given token ledger.
func NewController(bank funds.Controller) *Controller {
	return &Controller{
		pools:   NewPoolBucket(),
		streams: NewStreamBucket(),
		bank:    bank,
	}
}

// Pool returns the singleton vesting pool. ErrNoPool is returned if
// the pool was never initialized.
func (c *Controller) Pool(db tranche.ReadOnlyKVStore) (*VestingPool, error) {
	var pool VestingPool
	if err := c.pools.One(db, poolKey, &pool); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, ErrNoPool
		}
		return nil, errors.Wrap(err, "cannot load pool")
	}
	return &pool, nil
}

// InitPool creates the singleton vesting pool. A zero delay is
// replaced with the default activation delay. Initializing twice
// fails with ErrPoolExists.
func (c *Controller) InitPool(db tranche.KVStore, admin tranche.Address, delay tranche.UnixDuration) error {
	if c.pools.Has(db, poolKey) {
		return ErrPoolExists
	}
	if delay == 0 {
		delay = defaultActivationDelay
	}
	pool := VestingPool{
		Admin:           admin,
		ActivationDelay: delay,
	}
	return c.pools.Put(db, poolKey, &pool)
}

// CreateStream locks msg.TotalAmount of the pool admin's tokens in
// custody and records a vesting stream for the beneficiary. The
// stream starts at now plus the pool activation delay. No state is
// modified on failure.
func (c *Controller) CreateStream(db tranche.KVStore, now tranche.UnixTime, msg *CreateStreamMsg) (*VestingStream, error) {
	pool, err := c.Pool(db)
	if err != nil {
		return nil, err
	}
	if c.streams.Has(db, msg.Beneficiary) {
		return nil, errors.Wrapf(ErrStreamExists, "beneficiary %s", msg.Beneficiary)
	}

	stream := VestingStream{
		Beneficiary:     msg.Beneficiary,
		TotalAmount:     msg.TotalAmount,
		StartTime:       now + tranche.UnixTime(pool.ActivationDelay),
		CliffDuration:   msg.CliffDuration,
		VestingDuration: msg.VestingDuration,
		ClaimedAmount:   0,
	}
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	if err := c.bank.MoveFunds(db, pool.Admin, PoolAddress(), msg.TotalAmount); err != nil {
		return nil, errors.Wrap(err, "cannot fund the stream")
	}
	if err := c.streams.Put(db, stream.Beneficiary, &stream); err != nil {
		return nil, errors.Wrap(err, "cannot store the stream")
	}
	return &stream, nil
}

// Claim releases all currently vested and unclaimed tokens of the
// beneficiary's stream into their wallet and returns the released
// amount. When nothing is left to vest the stream is removed in the
// same call. No state is modified on failure.
func (c *Controller) Claim(db tranche.KVStore, now tranche.UnixTime, beneficiary tranche.Address) (uint64, error) {
	var stream VestingStream
	if err := c.streams.One(db, beneficiary, &stream); err != nil {
		if errors.ErrNotFound.Is(err) {
			return 0, errors.Wrapf(ErrNoStream, "beneficiary %s", beneficiary)
		}
		return 0, errors.Wrap(err, "cannot load stream")
	}

	claimable := stream.Vested(now) - stream.ClaimedAmount
	if claimable == 0 {
		return 0, ErrNothingToClaim
	}

	if err := c.bank.MoveFunds(db, PoolAddress(), beneficiary, claimable); err != nil {
		return 0, errors.Wrap(err, "cannot release tokens")
	}

	stream.ClaimedAmount += claimable
	if stream.ClaimedAmount == stream.TotalAmount {
		if err := c.streams.Delete(db, beneficiary); err != nil {
			return 0, errors.Wrap(err, "cannot remove a drained stream")
		}
		return claimable, nil
	}
	if err := c.streams.Put(db, beneficiary, &stream); err != nil {
		return 0, errors.Wrap(err, "cannot update the stream")
	}
	return claimable, nil
}

// VestedBalance returns the amount of the beneficiary's stream that
// has vested at the given time and was not yet claimed. This is a
// pure observer and modifies no state. ErrNoStream is returned if the
// beneficiary has no stream.
func (c *Controller) VestedBalance(db tranche.ReadOnlyKVStore, now tranche.UnixTime, beneficiary tranche.Address) (uint64, error) {
	var stream VestingStream
	if err := c.streams.One(db, beneficiary, &stream); err != nil {
		if errors.ErrNotFound.Is(err) {
			return 0, errors.Wrapf(ErrNoStream, "beneficiary %s", beneficiary)
		}
		return 0, errors.Wrap(err, "cannot load stream")
	}
	return stream.Vested(now) - stream.ClaimedAmount, nil
}
