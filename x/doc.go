/*
Package x contains the extensions that make up the vesting application,
as well as helper functions they share.

Sub-packages with their own buckets, messages and handlers:

  - x/funds: a minimal fungible token ledger with wallets,
    transfers, minting and burning
  - x/vesting: the vesting pool with per-beneficiary streams,
    a cliff-then-linear release curve, and claims

This package itself holds code that does not depend on any particular
extension, most importantly the Authenticator abstraction that lets
handlers verify permissions without being tied to one signature scheme.
*/
package x
