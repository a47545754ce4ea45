/*
Package paperwallet defines interfaces used throughout the app, such as:
storage, transactions, handlers etc. It also contains helpers to work with
context, addresses and abci.

We pass context through context.Context between app, middleware, and
handlers. To do so, paperwallet defines some common keys to store info, such
as block height and chain id. Each extension may add its own keys to enrich
the context with specific data.

There should exist two functions for every XYZ of type T
that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).

The bearer escrow itself lives in x/holder, balances are kept by x/cash.
*/
package paperwallet
