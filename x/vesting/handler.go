package vesting

import (
	"fmt"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/x"
)

const (
	initPoolCost     int64 = 100
	createStreamCost int64 = 300
	claimCost        int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tranche.Registry, auth x.Authenticator, control *Controller) {
	r.Handle(pathInitPoolMsg, InitPoolHandler{auth: auth, control: control})
	r.Handle(pathCreateStreamMsg, CreateStreamHandler{auth: auth, control: control})
	r.Handle(pathClaimMsg, ClaimHandler{auth: auth, control: control})
}

// RegisterQuery will register the pool bucket under /pools and the
// stream bucket under /streams.
func RegisterQuery(qr tranche.QueryRouter) {
	NewPoolBucket().Register("pools", qr)
	NewStreamBucket().Register("streams", qr)
}

// InitPoolHandler creates the singleton vesting pool.
type InitPoolHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ tranche.Handler = InitPoolHandler{}

// Check verifies the pool initialization is authorized and possible.
func (h InitPoolHandler) Check(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tranche.CheckResult{GasAllocated: initPoolCost}, nil
}

// Deliver stores the pool.
func (h InitPoolHandler) Deliver(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.InitPool(db, msg.Admin, msg.ActivationDelay); err != nil {
		return nil, err
	}
	return &tranche.DeliverResult{}, nil
}

func (h InitPoolHandler) validate(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*InitPoolMsg, error) {
	var msg InitPoolMsg
	if err := tranche.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin must sign pool initialization")
	}
	switch _, err := h.control.Pool(db); {
	case ErrNoPool.Is(err):
		// Initialization requires that no pool exists yet.
	case err == nil:
		return nil, ErrPoolExists
	default:
		return nil, err
	}
	return &msg, nil
}

// CreateStreamHandler locks admin tokens into a new vesting stream.
type CreateStreamHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ tranche.Handler = CreateStreamHandler{}

// Check verifies the stream creation is authorized and formally
// valid.
func (h CreateStreamHandler) Check(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tranche.CheckResult{GasAllocated: createStreamCost}, nil
}

// Deliver moves the tokens into custody and stores the stream.
func (h CreateStreamHandler) Deliver(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	blockTime, err := tranche.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	stream, err := h.control.CreateStream(db, tranche.AsUnixTime(blockTime), msg)
	if err != nil {
		return nil, err
	}
	return &tranche.DeliverResult{
		Log: fmt.Sprintf("stream for %s starts at %d", stream.Beneficiary, stream.StartTime),
	}, nil
}

func (h CreateStreamHandler) validate(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*CreateStreamMsg, error) {
	var msg CreateStreamMsg
	if err := tranche.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	pool, err := h.control.Pool(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, pool.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the pool admin can create streams")
	}
	return &msg, nil
}

// ClaimHandler releases vested tokens to the beneficiary.
type ClaimHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ tranche.Handler = ClaimHandler{}

// Check verifies the claim is authorized.
func (h ClaimHandler) Check(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &tranche.CheckResult{GasAllocated: claimCost}, nil
}

// Deliver releases whatever has vested. A stream with nothing left
// unclaimed is removed in the same call.
func (h ClaimHandler) Deliver(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	blockTime, err := tranche.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	released, err := h.control.Claim(db, tranche.AsUnixTime(blockTime), msg.Beneficiary)
	if err != nil {
		return nil, err
	}
	return &tranche.DeliverResult{
		Log: fmt.Sprintf("released %d to %s", released, msg.Beneficiary),
	}, nil
}

func (h ClaimHandler) validate(ctx tranche.Context, tx tranche.Tx) (*ClaimMsg, error) {
	var msg ClaimMsg
	if err := tranche.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Beneficiary) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "beneficiary must sign the claim")
	}
	return &msg, nil
}
