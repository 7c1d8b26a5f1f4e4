package funds

import (
	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/x"
)

const (
	sendCost int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tranche.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
}

// RegisterQuery will register the wallet bucket under /wallets.
func RegisterQuery(qr tranche.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
}

// SendHandler executes token transfers between wallets.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tranche.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg.
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check verifies the transfer is authorized and formally valid.
func (h SendHandler) Check(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &tranche.CheckResult{GasAllocated: sendCost}, nil
}

// Deliver moves the tokens.
func (h SendHandler) Deliver(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveFunds(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &tranche.DeliverResult{Log: msg.Memo}, nil
}

func (h SendHandler) validate(ctx tranche.Context, tx tranche.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := tranche.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source must sign the transfer")
	}
	return &msg, nil
}
