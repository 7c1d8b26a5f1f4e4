package tranchetest

import (
	"context"

	"github.com/iov-one/tranche"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the associated conditions. Use
// Signer for the single signer case and Signers when more than one
// condition should validate.
type Auth struct {
	// Signer is the main/first signer of a transaction.
	Signer tranche.Condition
	// Signers are additional signers of a transaction.
	Signers []tranche.Condition
}

func (a *Auth) GetConditions(tranche.Context) []tranche.Condition {
	conds := a.Signers
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx tranche.Context, addr tranche.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an authenticator that reads conditions from the context.
// Each instance uses its own context key so that two CtxAuth
// authenticators never see each other's conditions.
type CtxAuth struct {
	Key string
}

type contextKey string

func (a *CtxAuth) SetConditions(ctx tranche.Context, conds ...tranche.Condition) tranche.Context {
	return context.WithValue(ctx, contextKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx tranche.Context) []tranche.Condition {
	val := ctx.Value(contextKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]tranche.Condition)
	if !ok {
		panic("conditions of an invalid type in the context")
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx tranche.Context, addr tranche.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
