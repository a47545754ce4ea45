package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/paperwallet"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions. Signer is a
// shortcut for the common single signer case. When both attributes are set,
// Signer is reported after all Signers.
type Auth struct {
	Signer  paperwallet.Condition
	Signers []paperwallet.Condition
}

func (a *Auth) GetConditions(paperwallet.Context) []paperwallet.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	conds := make([]paperwallet.Condition, 0, len(a.Signers)+1)
	conds = append(conds, a.Signers...)
	return append(conds, a.Signer)
}

func (a *Auth) HasAddress(ctx paperwallet.Context, addr paperwallet.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

// SetConditions returns a context that authenticates given conditions.
func (a *CtxAuth) SetConditions(ctx paperwallet.Context, conds ...paperwallet.Condition) paperwallet.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx paperwallet.Context) []paperwallet.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]paperwallet.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []paperwallet.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx paperwallet.Context, addr paperwallet.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

type ctxAuthKey string

func hasAddress(conds []paperwallet.Condition, addr paperwallet.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
