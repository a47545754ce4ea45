package app

import (
	"reflect"

	"github.com/iov-one/paperwallet"
)

// Decorators is a stack of decorators waiting for the handler they wrap.
type Decorators []paperwallet.Decorator

// ChainDecorators starts a stack. The first decorator is the outermost one,
// so a paper wallet application usually reads
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		utils.NewSavepoint().OnCheck().OnDeliver(),
//	).WithHandler(router)
//
// A nil decorator, including a typed nil pointer, is skipped so optional
// decorators can be passed unconditionally.
func ChainDecorators(chain ...paperwallet.Decorator) Decorators {
	return Decorators(nil).Chain(chain...)
}

// Chain returns a new stack with chain added below the existing
// decorators. The receiver is not modified.
func (d Decorators) Chain(chain ...paperwallet.Decorator) Decorators {
	stack := make(Decorators, len(d), len(d)+len(chain))
	copy(stack, d)
	for _, dc := range chain {
		if !isNilDecorator(dc) {
			stack = append(stack, dc)
		}
	}
	return stack
}

// WithHandler returns a handler that runs every decorator of the stack,
// outermost first, before reaching h.
func (d Decorators) WithHandler(h paperwallet.Handler) paperwallet.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{decorator: d[i], next: h}
	}
	return h
}

func isNilDecorator(d paperwallet.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

type decorated struct {
	decorator paperwallet.Decorator
	next      paperwallet.Handler
}

func (s decorated) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	return s.decorator.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	return s.decorator.Deliver(ctx, db, tx, s.next)
}
