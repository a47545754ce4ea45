package holder

import (
	"fmt"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/x"
	"github.com/iov-one/paperwallet/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	storeCost  int64 = 300
	redeemCost int64 = 200

	// schemeCacheSize bounds the number of memoized derivations.
	schemeCacheSize = 1024

	tagHolder = "holder"
)

// RegisterQuery will register this bucket as "/holders"
func RegisterQuery(qr paperwallet.QueryRouter) {
	NewBucket().Register("holders", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r paperwallet.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	ledger := NewStoreLedger(auth, cashctrl)
	scheme := NewCachingScheme(ProgramAddressScheme{}, schemeCacheSize)
	r.Handle(&StoreMsg{}, NewStoreHandler(ledger, cashctrl, scheme))
	r.Handle(&RedeemMsg{}, NewRedeemHandler(ledger, cashctrl, scheme))
}

// StoreHandler allocates a holder at the address derived from the code and
// the secret commitment, and funds it with the deposit.
type StoreHandler struct {
	ledger Ledger
	cash   cash.Controller
	scheme AddressScheme
}

var _ paperwallet.Handler = StoreHandler{}

// NewStoreHandler creates a handler for StoreMsg.
func NewStoreHandler(ledger Ledger, cashctrl cash.Controller, scheme AddressScheme) StoreHandler {
	return StoreHandler{
		ledger: ledger,
		cash:   cashctrl,
		scheme: scheme,
	}
}

// storeRequest is everything Deliver needs once all preconditions hold.
type storeRequest struct {
	msg    *StoreMsg
	holder paperwallet.Address
	bump   byte
	amount uint64
}

// Check verifies that the store can succeed, without modifying the state.
func (h StoreHandler) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &paperwallet.CheckResult{GasAllocated: storeCost}, nil
}

// Deliver allocates and funds the holder.
func (h StoreHandler) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	req, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	holder, err := h.ledger.Allocate(ctx, db, req.msg.Depositor, req.holder, req.bump)
	if err != nil {
		return nil, errors.Wrap(err, "allocate")
	}
	if err := h.cash.Transfer(db, req.msg.Depositor, req.holder, req.amount); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	holder.Funded = true
	if err := h.ledger.Save(db, req.holder, holder); err != nil {
		return nil, errors.Wrap(err, "save holder")
	}

	paperwallet.GetLogger(ctx).Debug("holder stored",
		"holder", req.holder, "depositor", req.msg.Depositor, "lamports", req.amount)
	return &paperwallet.DeliverResult{
		Data: req.holder,
		Tags: holderTags(req.holder),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h StoreHandler) validate(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*storeRequest, error) {
	var msg StoreMsg
	if err := paperwallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.ledger.HasAuthority(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor must sign")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	addr, bump, err := h.scheme.Derive(Seeds(msg.Code, msg.SecretHash), conf.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "derive holder address")
	}

	switch holder, err := h.ledger.Lookup(db, addr); {
	case err == nil && holder.Funded:
		return nil, errors.Wrapf(ErrNonEmptyStore, "holder %s", addr)
	case err == nil:
		return nil, errors.Wrapf(errors.ErrAccountInUse, "holder %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "holder")
	}
	switch held, err := h.cash.Balance(db, addr); {
	case err != nil:
		return nil, errors.Wrap(err, "holder balance")
	case held > 0:
		return nil, errors.Wrapf(errors.ErrAccountInUse, "%s holds %d lamports", addr, held)
	}

	have, err := h.cash.Balance(db, msg.Depositor)
	if err != nil {
		return nil, err
	}
	amount, err := depositAmount(msg.Amount, conf.AllocationFee, have)
	if err != nil {
		return nil, err
	}
	return &storeRequest{msg: &msg, holder: addr, bump: bump, amount: amount}, nil
}

// depositAmount returns the lamports to move into the holder. A zero
// request deposits everything left after the allocation fee.
func depositAmount(requested, fee, have uint64) (uint64, error) {
	if have < fee {
		return 0, errors.Wrapf(cash.ErrInsufficientLamports, "allocation fee %d, available %d", fee, have)
	}
	left := have - fee
	if requested == 0 {
		if left == 0 {
			return 0, errors.Wrap(cash.ErrInsufficientLamports, "nothing left to deposit")
		}
		return left, nil
	}
	if requested > left {
		return 0, errors.Wrapf(cash.ErrInsufficientLamports, "%d requested, %d available after fee", requested, left)
	}
	return requested, nil
}

// RedeemHandler moves the whole balance of a holder to the destination and
// releases the holder.
type RedeemHandler struct {
	ledger Ledger
	cash   cash.Controller
	scheme AddressScheme
}

var _ paperwallet.Handler = RedeemHandler{}

// NewRedeemHandler creates a handler for RedeemMsg.
func NewRedeemHandler(ledger Ledger, cashctrl cash.Controller, scheme AddressScheme) RedeemHandler {
	return RedeemHandler{
		ledger: ledger,
		cash:   cashctrl,
		scheme: scheme,
	}
}

type redeemRequest struct {
	msg     *RedeemMsg
	holder  paperwallet.Address
	record  *Holder
	balance uint64
}

// Check verifies that the redeem can succeed, without modifying the state.
func (h RedeemHandler) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &paperwallet.CheckResult{GasAllocated: redeemCost}, nil
}

// Deliver drains the holder and reclaims it.
func (h RedeemHandler) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	req, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.cash.Transfer(db, req.holder, req.msg.Destination, req.balance); err != nil {
		return nil, errors.Wrap(err, "withdraw")
	}
	req.record.Funded = false
	if err := h.ledger.Save(db, req.holder, req.record); err != nil {
		return nil, errors.Wrap(err, "save holder")
	}
	if err := h.ledger.Reclaim(db, req.holder); err != nil {
		return nil, errors.Wrap(err, "reclaim")
	}

	paperwallet.GetLogger(ctx).Debug("holder redeemed",
		"holder", req.holder, "destination", req.msg.Destination, "lamports", req.balance)
	return &paperwallet.DeliverResult{
		Data: req.holder,
		Tags: holderTags(req.holder),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RedeemHandler) validate(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*redeemRequest, error) {
	var msg RedeemMsg
	if err := paperwallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	seeds := Seeds(msg.Code, SecretCommitment(msg.Secret))
	addr, bump, err := h.scheme.Derive(seeds, conf.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "derive holder address")
	}
	if msg.Destination.Equals(addr) {
		return nil, errors.Wrap(errors.ErrInput, "destination cannot be the holder itself")
	}

	record, err := h.ledger.Lookup(db, addr)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrEmptyRedeem, "no holder at %s", addr)
	case err != nil:
		return nil, errors.Wrap(err, "holder")
	case !record.Funded:
		return nil, errors.Wrapf(ErrEmptyRedeem, "holder %s", addr)
	case record.Bump != bump:
		return nil, errors.Wrapf(errors.ErrState, "holder bump %d, derived %d", record.Bump, bump)
	}

	balance, err := h.cash.Balance(db, addr)
	if err != nil {
		return nil, err
	}
	if balance == 0 {
		return nil, errors.Wrapf(errors.ErrState, "funded holder %s holds no lamports", addr)
	}
	return &redeemRequest{msg: &msg, holder: addr, record: record, balance: balance}, nil
}

func holderTags(addr paperwallet.Address) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagHolder), Value: []byte(fmt.Sprintf("%X", []byte(addr)))},
	}
}
