package x

import (
	"github.com/iov-one/paperwallet"
)

// Authenticator tells which conditions the current transaction fulfils.
// Handlers take one in their constructor so the host can plug in its own
// signature scheme.
type Authenticator interface {
	GetConditions(paperwallet.Context) []paperwallet.Condition
	HasAddress(paperwallet.Context, paperwallet.Address) bool
}

// ChainAuth returns an Authenticator that grants the union of what the
// given authenticators grant.
func ChainAuth(impls ...Authenticator) Authenticator {
	return multiAuth(impls)
}

type multiAuth []Authenticator

// GetConditions lists the conditions in authenticator order. A condition
// granted twice is listed once.
func (m multiAuth) GetConditions(ctx paperwallet.Context) []paperwallet.Condition {
	var res []paperwallet.Condition
	for _, impl := range m {
		for _, c := range impl.GetConditions(ctx) {
			if indexOf(res, c) < 0 {
				res = append(res, c)
			}
		}
	}
	return res
}

func (m multiAuth) HasAddress(ctx paperwallet.Context, addr paperwallet.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses returns the addresses of all fulfilled conditions.
func GetAddresses(ctx paperwallet.Context, auth Authenticator) []paperwallet.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]paperwallet.Address, 0, len(conds))
	for _, c := range conds {
		addrs = append(addrs, c.Address())
	}
	return addrs
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx paperwallet.Context, auth Authenticator) paperwallet.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// HasAllAddresses reports whether every one of required is authorized.
func HasAllAddresses(ctx paperwallet.Context, auth Authenticator, required []paperwallet.Address) bool {
	for _, addr := range required {
		if !auth.HasAddress(ctx, addr) {
			return false
		}
	}
	return true
}

// HasNConditions reports whether at least n of requested are fulfilled.
func HasNConditions(ctx paperwallet.Context, auth Authenticator, requested []paperwallet.Condition, n int) bool {
	have := auth.GetConditions(ctx)
	for _, c := range requested {
		if n <= 0 {
			break
		}
		if indexOf(have, c) >= 0 {
			n--
		}
	}
	return n <= 0
}

// HasAllConditions reports whether every one of required is fulfilled.
func HasAllConditions(ctx paperwallet.Context, auth Authenticator, required []paperwallet.Condition) bool {
	return HasNConditions(ctx, auth, required, len(required))
}

func indexOf(conds []paperwallet.Condition, c paperwallet.Condition) int {
	for i, have := range conds {
		if have.Equals(c) {
			return i
		}
	}
	return -1
}
