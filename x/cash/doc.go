/*
Package cash keeps the lamport balance of every address.

A wallet is a single unsigned counter stored under the owner address. Wallets
are created on the first credit and removed once they are drained, so an
unknown address simply has a zero balance.

Other extensions move funds through the Controller. Every transfer either
completes or leaves the store untouched; atomicity across several transfers
is provided by the transaction savepoint.
*/
package cash
