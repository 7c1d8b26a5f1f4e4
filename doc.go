/*
Package tranche defines the common interfaces that tie the vesting engine
together: stores, transactions, handlers and the request context.

The core accounting logic lives in x/vesting and x/funds. This package only
declares what those extensions, and any hosting runtime, must agree on: a
KVStore for persistent keyed state, a Context carrying the block time and
logger, Conditions/Addresses for identity, and the Msg/Tx/Handler triple for
dispatching operations.

There should exist two functions for every XYZ of type T that we want to
support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)
*/
package tranche
