package utils

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

// Recovery converts a panic raised below it into an ErrPanic failure of
// the transaction. Put it above Savepoint so a panicking handler leaves no
// writes behind.
type Recovery struct{}

var _ paperwallet.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (res *paperwallet.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (res *paperwallet.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverTx must be the deferred call itself.
func recoverTx(ctx paperwallet.Context, tx paperwallet.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	paperwallet.GetLogger(ctx).Error("Handler panic", "path", txPath(tx), "panic", r)
}
