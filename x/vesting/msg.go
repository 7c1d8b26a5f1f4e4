package vesting

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
)

const (
	pathInitPoolMsg     = "vesting/init"
	pathCreateStreamMsg = "vesting/create"
	pathClaimMsg        = "vesting/claim"
)

var _ tranche.Msg = (*InitPoolMsg)(nil)

// Path returns the routing path for this message.
func (InitPoolMsg) Path() string {
	return pathInitPoolMsg
}

// Validate makes sure that this is sensible.
func (m *InitPoolMsg) Validate() error {
	if err := m.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if m.ActivationDelay < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "negative activation delay")
	}
	return nil
}

var _ tranche.Msg = (*CreateStreamMsg)(nil)

// Path returns the routing path for this message.
func (CreateStreamMsg) Path() string {
	return pathCreateStreamMsg
}

// Validate makes sure that this is sensible.
func (m *CreateStreamMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if m.TotalAmount == 0 {
		return errors.Wrap(ErrInvalidSchedule, "total amount must be positive")
	}
	if m.CliffDuration < 0 {
		return errors.Wrap(ErrInvalidSchedule, "negative cliff duration")
	}
	if m.VestingDuration <= 0 {
		return errors.Wrap(ErrInvalidSchedule, "vesting duration must be positive")
	}
	if m.CliffDuration > m.VestingDuration {
		return errors.Wrap(ErrInvalidSchedule, "cliff cannot outlast the vesting period")
	}
	return nil
}

var _ tranche.Msg = (*ClaimMsg)(nil)

// Path returns the routing path for this message.
func (ClaimMsg) Path() string {
	return pathClaimMsg
}

// Validate makes sure that this is sensible.
func (m *ClaimMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}
