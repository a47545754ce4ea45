package weavetest

import "github.com/iov-one/paperwallet"

// Decorator is a paperwallet.Decorator that either fails with a preset
// error or passes the call on to the next handler.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ paperwallet.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (*paperwallet.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (*paperwallet.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that passes every call through d before
// reaching h.
func Decorate(h paperwallet.Handler, d paperwallet.Decorator) paperwallet.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   paperwallet.Handler
	decorator paperwallet.Decorator
}

func (d decorated) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}
