/*
Package funds implements a minimal fungible token ledger.

Every address owns at most one Wallet that holds a single uint64
balance. Tokens move between wallets with SendMsg, and other
extensions can move, mint and burn tokens through the Controller
interface instead of touching wallets directly.

There is no token identifier: the whole application deals in exactly
one fungible asset.
*/
package funds
