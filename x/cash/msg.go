package cash

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

const (
	pathSendMsg = "cash/send"

	maxMemoSize int = 128
)

var _ paperwallet.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	if m.Lamports == 0 {
		errs = errors.AppendField(errs, "Lamports", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return errs
}
