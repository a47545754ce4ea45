package app

import (
	"testing"

	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &weavetest.Msg{RoutePath: "test/good"}
	bad := &weavetest.Msg{RoutePath: "test/bad"}
	missing := &weavetest.Msg{RoutePath: "test/missing"}

	var counter weavetest.Handler
	r.Handle(good, &counter)
	r.Handle(bad, &weavetest.Handler{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	})

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle(good, &counter) })
	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "l:7"}, &counter) })

	// check proper paths work
	_, err := r.Check(nil, nil, &weavetest.Tx{Msg: good})
	assert.NoError(t, err)
	_, err = r.Deliver(nil, nil, &weavetest.Tx{Msg: good})
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	// check errors handler is also looked up
	_, err = r.Deliver(nil, nil, &weavetest.Tx{Msg: bad})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.False(t, ErrNoSuchPath.Is(err))
	assert.Equal(t, 2, counter.CallCount())

	// make sure not found returns an error handler as well
	_, err = r.Deliver(nil, nil, &weavetest.Tx{Msg: missing})
	assert.True(t, ErrNoSuchPath.Is(err))
	_, err = r.Check(nil, nil, &weavetest.Tx{Msg: missing})
	assert.True(t, ErrNoSuchPath.Is(err))
	assert.Equal(t, 2, counter.CallCount())

	// a transaction without a message never reaches a handler
	_, err = r.Deliver(nil, nil, &weavetest.Tx{Err: errors.ErrInput})
	assert.True(t, errors.ErrInput.Is(err))
	_, err = r.Check(nil, nil, &weavetest.Tx{})
	assert.True(t, errors.ErrEmpty.Is(err))
	assert.Equal(t, 2, counter.CallCount())

	// dashes are allowed in paths
	assert.NotPanics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "cash/send-all"}, &counter) })
}
