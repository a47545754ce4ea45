package cash

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/orm"
)

// Balancer is implemented by anything that can tell the balance of an
// address.
type Balancer interface {
	// Balance returns the lamports held by given address. Unknown
	// addresses hold nothing.
	Balance(paperwallet.ReadOnlyKVStore, paperwallet.Address) (uint64, error)
}

// LamportMover is implemented by anything that can move lamports between
// addresses.
type LamportMover interface {
	// Transfer moves amount of lamports from src to dest. Nothing is
	// written if src does not hold enough.
	Transfer(db paperwallet.KVStore, src, dest paperwallet.Address, amount uint64) error
}

// Controller is the functionality needed by other extensions to work with
// balances.
type Controller interface {
	Balancer
	LamportMover

	// Issue credits dest with newly created lamports.
	Issue(db paperwallet.KVStore, dest paperwallet.Address, amount uint64) error
}

// BaseController is the default Controller implementation operating on
// wallets stored in a bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default wallet bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the lamports held by given address.
func (c BaseController) Balance(db paperwallet.ReadOnlyKVStore, addr paperwallet.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return w.Lamports, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

// Transfer moves the given amount from src to dest. Both balances are
// checked before anything is written, so a failing transfer never leaves a
// partial update behind. Drained wallets are removed.
func (c BaseController) Transfer(db paperwallet.KVStore, src, dest paperwallet.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	have, err := c.Balance(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if amount > have {
		return errors.Wrapf(ErrInsufficientLamports, "%s holds %d, %d requested", src, have, amount)
	}
	if amount == 0 || src.Equals(dest) {
		return nil
	}

	got, err := c.Balance(db, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if got+amount < got {
		return errors.Wrapf(errors.ErrOverflow, "%s balance", dest)
	}

	if err := c.set(db, src, have-amount); err != nil {
		return errors.Wrap(err, "debit")
	}
	if err := c.set(db, dest, got+amount); err != nil {
		return errors.Wrap(err, "credit")
	}
	return nil
}

// Issue credits dest with amount of new lamports. Fails if it overflows the
// wallet.
func (c BaseController) Issue(db paperwallet.KVStore, dest paperwallet.Address, amount uint64) error {
	got, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	if got+amount < got {
		return errors.Wrapf(errors.ErrOverflow, "%s balance", dest)
	}
	return c.set(db, dest, got+amount)
}

func (c BaseController) set(db paperwallet.KVStore, addr paperwallet.Address, lamports uint64) error {
	if lamports == 0 {
		err := c.bucket.Delete(db, addr)
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	}
	return c.bucket.Put(db, addr, &Wallet{Lamports: lamports})
}
