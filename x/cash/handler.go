package cash

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/x"
)

const sendTxCost int64 = 100

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr paperwallet.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r paperwallet.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// SendHandler will handle sending lamports
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ paperwallet.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &paperwallet.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the lamports from source to destination if all
// preconditions are met
func (h SendHandler) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Transfer(db, msg.Source, msg.Destination, msg.Lamports); err != nil {
		return nil, err
	}
	paperwallet.GetLogger(ctx).Debug("lamports sent",
		"source", msg.Source, "destination", msg.Destination, "lamports", msg.Lamports)
	return &paperwallet.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SendHandler) validate(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := paperwallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source must sign")
	}
	have, err := h.control.Balance(db, msg.Source)
	if err != nil {
		return nil, err
	}
	if msg.Lamports > have {
		return nil, errors.Wrapf(ErrInsufficientLamports, "%d requested, %d available", msg.Lamports, have)
	}
	return &msg, nil
}
