package cash

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

const optKey = "cash"

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ paperwallet.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and credit every
// listed address. A genesis without the "cash" key funds nobody.
func (Initializer) FromGenesis(opts paperwallet.Options, kv paperwallet.KVStore) error {
	next, err := opts.Stream(optKey)
	switch {
	case errors.ErrEmpty.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot read accounts")
	}

	ctrl := NewController()
	for {
		var acct GenesisAccount
		switch err := next(&acct); {
		case err == nil:
		case errors.ErrEmpty.Is(err):
			return nil
		default:
			return errors.Wrap(err, "cannot load account")
		}

		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "account address")
		}
		if err := ctrl.Issue(kv, acct.Address, acct.Lamports); err != nil {
			return errors.Wrapf(err, "cannot fund %s", acct.Address)
		}
	}
}
