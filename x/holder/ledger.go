package holder

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/orm"
	"github.com/iov-one/paperwallet/x"
	"github.com/iov-one/paperwallet/x/cash"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger_test.go -package=holder

// Ledger is the host capability the holder handlers rely on. It owns the
// holder records and the authority checks. Lamports are moved through a
// cash controller.
type Ledger interface {
	// HasAuthority returns true if the transaction was authorized by the
	// owner of given address.
	HasAuthority(ctx paperwallet.Context, addr paperwallet.Address) bool

	// Lookup returns the holder stored at given address or ErrNotFound.
	Lookup(db paperwallet.ReadOnlyKVStore, addr paperwallet.Address) (*Holder, error)

	// Allocate creates an unfunded holder at given address, charging payer
	// the allocation fee. It fails with ErrAccountInUse if the address is
	// already in use.
	Allocate(ctx paperwallet.Context, db paperwallet.KVStore, payer, addr paperwallet.Address, bump byte) (*Holder, error)

	// Save persists the state of an allocated holder.
	Save(db paperwallet.KVStore, addr paperwallet.Address, h *Holder) error

	// Reclaim removes an unfunded holder. The allocation fee is not
	// refunded.
	Reclaim(db paperwallet.KVStore, addr paperwallet.Address) error
}

// StoreLedger is the default Ledger implementation, keeping holders in a
// bucket next to the cash wallets.
type StoreLedger struct {
	auth   x.Authenticator
	cash   cash.Controller
	bucket orm.ModelBucket
}

var _ Ledger = (*StoreLedger)(nil)

// NewStoreLedger returns a ledger using the default holder bucket.
func NewStoreLedger(auth x.Authenticator, cashctrl cash.Controller) *StoreLedger {
	return &StoreLedger{
		auth:   auth,
		cash:   cashctrl,
		bucket: NewBucket(),
	}
}

func (l *StoreLedger) HasAuthority(ctx paperwallet.Context, addr paperwallet.Address) bool {
	return l.auth.HasAddress(ctx, addr)
}

func (l *StoreLedger) Lookup(db paperwallet.ReadOnlyKVStore, addr paperwallet.Address) (*Holder, error) {
	var h Holder
	if err := l.bucket.One(db, addr, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (l *StoreLedger) Allocate(ctx paperwallet.Context, db paperwallet.KVStore, payer, addr paperwallet.Address, bump byte) (*Holder, error) {
	switch err := l.bucket.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrAccountInUse, "holder %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "holder")
	}
	// Lamports sent to the address before it was allocated would otherwise
	// become redeemable by whoever funds it.
	switch held, err := l.cash.Balance(db, addr); {
	case err != nil:
		return nil, errors.Wrap(err, "holder balance")
	case held > 0:
		return nil, errors.Wrapf(errors.ErrAccountInUse, "%s holds %d lamports", addr, held)
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := l.cash.Transfer(db, payer, conf.FeeCollector, conf.AllocationFee); err != nil {
		return nil, errors.Wrap(err, "allocation fee")
	}

	h := &Holder{Bump: bump}
	if err := l.bucket.Put(db, addr, h); err != nil {
		return nil, err
	}
	paperwallet.GetLogger(ctx).Debug("holder allocated",
		"holder", addr, "payer", payer, "fee", conf.AllocationFee)
	return h, nil
}

func (l *StoreLedger) Save(db paperwallet.KVStore, addr paperwallet.Address, h *Holder) error {
	if err := l.bucket.Has(db, addr); err != nil {
		return errors.Wrap(err, "not allocated")
	}
	return l.bucket.Put(db, addr, h)
}

func (l *StoreLedger) Reclaim(db paperwallet.KVStore, addr paperwallet.Address) error {
	h, err := l.Lookup(db, addr)
	if err != nil {
		return err
	}
	if h.Funded {
		return errors.Wrapf(errors.ErrState, "holder %s is funded", addr)
	}
	return l.bucket.Delete(db, addr)
}
