package vesting

import (
	"github.com/iov-one/tranche/errors"
)

// x/vesting reserves the error codes 1200-1209.
var (
	// ErrNoPool is returned when the vesting pool was not initialized.
	ErrNoPool = errors.Register(1200, "vesting pool not initialized")

	// ErrPoolExists is returned when initializing an already
	// initialized vesting pool.
	ErrPoolExists = errors.Register(1201, "vesting pool already initialized")

	// ErrNoStream is returned when no vesting stream exists for an
	// address.
	ErrNoStream = errors.Register(1202, "no vesting stream")

	// ErrStreamExists is returned when creating a second stream for
	// the same beneficiary.
	ErrStreamExists = errors.Register(1203, "vesting stream exists")

	// ErrInvalidSchedule is returned when the vesting schedule
	// parameters are not sensible.
	ErrInvalidSchedule = errors.Register(1204, "invalid vesting schedule")

	// ErrNothingToClaim is returned when a claim would release zero
	// tokens.
	ErrNothingToClaim = errors.Register(1205, "nothing to claim")
)
