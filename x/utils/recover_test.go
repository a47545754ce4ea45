package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/store"
	"github.com/iov-one/paperwallet/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "holder/redeem"}}

	cases := map[string]struct {
		handler paperwallet.Handler
		wantErr *errors.Error
		wantLog bool
	}{
		"panic becomes an error": {
			handler: panicHandler{},
			wantErr: errors.ErrPanic,
			wantLog: true,
		},
		"errors pass through": {
			handler: &weavetest.Handler{CheckErr: errors.ErrState, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
		},
		"success passes through": {
			handler: &weavetest.Handler{},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := paperwallet.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
			db := store.MemStore()

			_, err := NewRecovery().Check(ctx, db, tx, tc.handler)
			require.True(t, tc.wantErr.Is(err), "check: %+v", err)
			_, err = NewRecovery().Deliver(ctx, db, tx, tc.handler)
			require.True(t, tc.wantErr.Is(err), "deliver: %+v", err)

			out := buf.String()
			assert.Equal(t, tc.wantLog, strings.Contains(out, "path=holder/redeem"), out)
			if tc.wantLog {
				assert.Contains(t, out, "panic=")
			}
		})
	}
}

type panicHandler struct{}

var _ paperwallet.Handler = panicHandler{}

func (panicHandler) Check(paperwallet.Context, paperwallet.KVStore, paperwallet.Tx) (*paperwallet.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(paperwallet.Context, paperwallet.KVStore, paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	panic("deliver panic")
}
