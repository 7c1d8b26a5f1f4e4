/*
Package vesting implements token vesting with a cliff.

A single VestingPool is owned by an admin address. The admin locks
tokens into per-beneficiary VestingStreams. Each stream releases
nothing until the cliff has passed and then releases linearly until
the end of the vesting period, at which point the full amount is
available. Beneficiaries withdraw whatever has vested with ClaimMsg;
a claim that leaves nothing unclaimed removes the stream.

Locked tokens are held in custody at an address derived from the pool
condition, so the x/funds ledger always accounts for every token,
vested or not.

Handlers perform all checks before the first write. Together with the
transaction isolation provided by the application store this makes
every operation all-or-nothing.
*/
package vesting
