// Package txn is the transaction domain model: assets, memos, time bounds,
// operations, transactions and their signed envelopes. Every type carries
// its canonical XDR mapping, and Transaction carries the signing primitives.
package txn
