package vesting

import (
	"math"
	"math/big"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/orm"
)

// poolKey is the storage key of the singleton vesting pool.
var poolKey = []byte("singleton")

// PoolCondition is the condition guarding tokens locked in streams.
func PoolCondition() tranche.Condition {
	return tranche.NewCondition("vesting", "pool", poolKey)
}

// PoolAddress is the custody address that holds all locked tokens.
func PoolAddress() tranche.Address {
	return PoolCondition().Address()
}

var _ orm.Model = (*VestingPool)(nil)

// Validate ensures the pool is sensible.
func (p *VestingPool) Validate() error {
	if err := p.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if p.ActivationDelay <= 0 {
		return errors.Wrap(errors.ErrInvalidState, "activation delay must be positive")
	}
	return nil
}

// Copy produces a deep copy of this pool.
func (p *VestingPool) Copy() orm.Model {
	return &VestingPool{
		Admin:           p.Admin.Clone(),
		ActivationDelay: p.ActivationDelay,
	}
}

// NewPoolBucket returns a bucket for keeping the singleton vesting
// pool.
func NewPoolBucket() orm.ModelBucket {
	return orm.NewModelBucket("vpool", &VestingPool{})
}

var _ orm.Model = (*VestingStream)(nil)

// Validate ensures the stream is sensible.
func (s *VestingStream) Validate() error {
	if err := s.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if s.TotalAmount == 0 {
		return errors.Wrap(ErrInvalidSchedule, "total amount must be positive")
	}
	if err := s.StartTime.Validate(); err != nil {
		return errors.Wrap(err, "start time")
	}
	if s.CliffDuration < 0 {
		return errors.Wrap(ErrInvalidSchedule, "negative cliff duration")
	}
	if s.VestingDuration <= 0 {
		return errors.Wrap(ErrInvalidSchedule, "vesting duration must be positive")
	}
	if s.CliffDuration > s.VestingDuration {
		return errors.Wrap(ErrInvalidSchedule, "cliff cannot outlast the vesting period")
	}
	if int64(s.VestingDuration) > math.MaxInt64-int64(s.StartTime) {
		return errors.Wrap(ErrInvalidSchedule, "schedule end is out of range")
	}
	if s.ClaimedAmount > s.TotalAmount {
		return errors.Wrap(errors.ErrInvalidState, "claimed more than the total amount")
	}
	return nil
}

// Copy produces a deep copy of this stream.
func (s *VestingStream) Copy() orm.Model {
	return &VestingStream{
		Beneficiary:     s.Beneficiary.Clone(),
		TotalAmount:     s.TotalAmount,
		StartTime:       s.StartTime,
		CliffDuration:   s.CliffDuration,
		VestingDuration: s.VestingDuration,
		ClaimedAmount:   s.ClaimedAmount,
	}
}

// Vested returns the amount released by the schedule at the given
// time. Nothing is released before the cliff. Between the cliff and
// the end of the vesting period the amount grows linearly from zero
// to the total. The intermediate multiplication is done on big
// integers so that large totals cannot overflow.
func (s *VestingStream) Vested(now tranche.UnixTime) uint64 {
	// The boundaries are computed in unix seconds. Converting the
	// durations to time.Duration nanoseconds overflows for any
	// schedule longer than about 292 years.
	cliffAt := s.StartTime + tranche.UnixTime(s.CliffDuration)
	endAt := s.StartTime + tranche.UnixTime(s.VestingDuration)

	if now < cliffAt {
		return 0
	}
	if now >= endAt {
		return s.TotalAmount
	}

	// cliffAt < endAt is guaranteed here as otherwise one of the
	// branches above returned.
	elapsed := big.NewInt(int64(now - cliffAt))
	window := big.NewInt(int64(endAt - cliffAt))
	total := new(big.Int).SetUint64(s.TotalAmount)

	vested := total.Mul(total, elapsed)
	vested = vested.Div(vested, window)
	return vested.Uint64()
}

// NewStreamBucket returns a bucket for keeping vesting streams, keyed
// by the beneficiary address.
func NewStreamBucket() orm.ModelBucket {
	return orm.NewModelBucket("stream", &VestingStream{})
}
