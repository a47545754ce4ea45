package app

import (
	"context"
	"testing"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/store"
	"github.com/iov-one/paperwallet/weavetest"
	"github.com/iov-one/paperwallet/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainDecorators(t *testing.T) {
	var outer, middle, inner weavetest.Decorator
	var h weavetest.Handler

	stack := ChainDecorators(
		&outer,
		utils.NewLogging(),
		utils.NewRecovery(),
		&middle,
		panicAtHeight(6),
		&inner,
	).WithHandler(&h)

	bg := context.Background()

	_, err := stack.Check(bg, nil, nil)
	require.NoError(t, err)
	_, err = stack.Deliver(paperwallet.WithHeight(bg, 4), nil, nil)
	require.NoError(t, err)

	for _, c := range []*weavetest.Decorator{&outer, &middle, &inner} {
		assert.Equal(t, 2, c.CallCount())
	}
	assert.Equal(t, 2, h.CallCount())

	high := paperwallet.WithHeight(bg, 8)
	_, err = stack.Check(high, nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(high, nil, nil)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, outer.CallCount())
	assert.Equal(t, 4, middle.CallCount())
	assert.Equal(t, 2, inner.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainPanicLeavesNoWrites(t *testing.T) {
	db := store.MemStore()
	h := weavetest.Handler{WriteKey: []byte("holder"), WriteValue: []byte{1}}

	stack := ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
		panicAfterHeight(5),
	).WithHandler(&h)

	_, err := stack.Deliver(paperwallet.WithHeight(context.Background(), 7), db, nil)
	require.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 1, h.CallCount())
	got, err := db.Get([]byte("holder"))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = stack.Deliver(paperwallet.WithHeight(context.Background(), 2), db, nil)
	require.NoError(t, err)
	got, err = db.Get([]byte("holder"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
}

// panicAfterHeight lets the handler run and panics afterwards when the
// block height is at least the given value.
type panicAfterHeight int64

func (p panicAfterHeight) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (*paperwallet.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (p panicAfterHeight) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (*paperwallet.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if h, _ := paperwallet.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return res, err
}

func TestChainSkipsNilDecorators(t *testing.T) {
	var d weavetest.Decorator
	var nilDecorator *weavetest.Decorator
	var h weavetest.Handler

	base := ChainDecorators(nil, nilDecorator)
	stack := base.Chain(&d, nil).WithHandler(&h)
	assert.Len(t, base, 0)

	_, err := stack.Deliver(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, d.CallCount())
	assert.Equal(t, 1, h.CallCount())
}

// panicAtHeight panics when the block height is at least the given value.
type panicAtHeight int64

var _ paperwallet.Decorator = panicAtHeight(0)

func (p panicAtHeight) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (*paperwallet.CheckResult, error) {
	if h, _ := paperwallet.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeight) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (*paperwallet.DeliverResult, error) {
	if h, _ := paperwallet.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}
