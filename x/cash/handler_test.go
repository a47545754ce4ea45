package cash

import (
	"context"
	"testing"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/store"
	"github.com/iov-one/paperwallet/weavetest"
	"github.com/iov-one/paperwallet/weavetest/assert"
)

func TestSend(t *testing.T) {
	perm := weavetest.NewCondition()
	perm2 := weavetest.NewCondition()

	cases := map[string]struct {
		signer      paperwallet.Condition
		funds       uint64
		msg         paperwallet.Msg
		wantCheck   *errors.Error
		wantDeliver *errors.Error
		wantSrc     uint64
		wantDest    uint64
	}{
		"wrong message type": {
			msg:         &weavetest.Msg{RoutePath: pathSendMsg},
			wantCheck:   errors.ErrType,
			wantDeliver: errors.ErrType,
		},
		"zero amount": {
			signer:      perm,
			msg:         &SendMsg{Source: perm.Address(), Destination: perm2.Address()},
			wantCheck:   errors.ErrAmount,
			wantDeliver: errors.ErrAmount,
		},
		"missing source": {
			msg:         &SendMsg{Lamports: 10, Destination: perm2.Address()},
			wantCheck:   errors.ErrInput,
			wantDeliver: errors.ErrInput,
		},
		"source did not sign": {
			signer:      perm2,
			funds:       100,
			msg:         &SendMsg{Lamports: 10, Source: perm.Address(), Destination: perm2.Address()},
			wantCheck:   errors.ErrUnauthorized,
			wantDeliver: errors.ErrUnauthorized,
			wantSrc:     100,
		},
		"sender has no account": {
			signer:      perm,
			msg:         &SendMsg{Lamports: 10, Source: perm.Address(), Destination: perm2.Address()},
			wantCheck:   ErrInsufficientLamports,
			wantDeliver: ErrInsufficientLamports,
		},
		"sender too poor": {
			signer:      perm,
			funds:       9,
			msg:         &SendMsg{Lamports: 10, Source: perm.Address(), Destination: perm2.Address()},
			wantCheck:   ErrInsufficientLamports,
			wantDeliver: ErrInsufficientLamports,
			wantSrc:     9,
		},
		"sender got cash": {
			signer:   perm,
			funds:    100,
			msg:      &SendMsg{Lamports: 40, Source: perm.Address(), Destination: perm2.Address(), Memo: "rent"},
			wantSrc:  60,
			wantDest: 40,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &weavetest.Auth{Signer: tc.signer}
			ctrl := NewController()
			h := NewSendHandler(auth, ctrl)

			db := store.MemStore()
			if tc.funds > 0 {
				assert.Nil(t, ctrl.Issue(db, perm.Address(), tc.funds))
			}

			tx := &weavetest.Tx{Msg: tc.msg}
			ctx := context.Background()

			cache := db.CacheWrap()
			if _, err := h.Check(ctx, cache, tx); !tc.wantCheck.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			if _, err := h.Deliver(ctx, db, tx); !tc.wantDeliver.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			assertBalance(t, db, perm.Address(), tc.wantSrc)
			assertBalance(t, db, perm2.Address(), tc.wantDest)
		})
	}
}

func TestSendMsgValidate(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	long := make([]byte, maxMemoSize+1)
	for i := range long {
		long[i] = 'a'
	}

	cases := map[string]struct {
		msg       SendMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: SendMsg{Source: addr, Destination: addr, Lamports: 1},
		},
		"memo too long": {
			msg:       SendMsg{Source: addr, Destination: addr, Lamports: 1, Memo: string(long)},
			wantField: "Memo",
			wantErr:   errors.ErrInput,
		},
		"missing destination": {
			msg:       SendMsg{Source: addr, Lamports: 1},
			wantField: "Destination",
			wantErr:   errors.ErrInput,
		},
		"zero lamports": {
			msg:       SendMsg{Source: addr, Destination: addr},
			wantField: "Lamports",
			wantErr:   errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestWalletQuery(t *testing.T) {
	db := store.MemStore()
	addr := weavetest.NewCondition().Address()
	assert.Nil(t, NewController().Issue(db, addr, 12))

	qr := paperwallet.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/wallets")
	if h == nil {
		t.Fatal("wallets query not registered")
	}

	models, err := h.Query(db, paperwallet.KeyQueryMod, addr)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	var w Wallet
	assert.Nil(t, w.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(12), w.Lamports)
}

func TestSendMsgWireFormat(t *testing.T) {
	msg := SendMsg{
		Source:      paperwallet.Address{0x01},
		Destination: paperwallet.Address{0x02},
		Lamports:    150,
		Memo:        "hi",
	}
	raw, err := msg.Marshal()
	assert.Nil(t, err)
	want := []byte{
		0x0a, 0x01, 0x01,
		0x12, 0x01, 0x02,
		0x18, 0x96, 0x01,
		0x22, 0x02, 'h', 'i',
	}
	assert.Equal(t, want, raw)

	var got SendMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, got)

	// truncated memo is rejected
	assert.IsErr(t, errors.ErrInput, got.Unmarshal([]byte{0x22, 0x04, 'h', 'i'}))
}
