package utils

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

// Savepoint isolates all writes done by the wrapped handler. Changes are
// written through only when the handler succeeds and discarded otherwise,
// so a failed store or redeem never leaves a partial transfer behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ paperwallet.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on CheckTx
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on DeliverTx
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a checkpoint
func (s Savepoint) Check(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (*paperwallet.CheckResult, error) {
	cache, ok := s.wrap(s.onCheck, store)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (*paperwallet.DeliverResult, error) {
	cache, ok := s.wrap(s.onDeliver, store)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

func (Savepoint) wrap(enabled bool, store paperwallet.KVStore) (paperwallet.KVCacheWrap, bool) {
	if !enabled {
		return nil, false
	}
	cstore, ok := store.(paperwallet.CacheableKVStore)
	if !ok {
		return nil, false
	}
	return cstore.CacheWrap(), true
}
