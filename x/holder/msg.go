package holder

import (
	"crypto/sha256"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

const (
	pathStoreMsg  = "holder/store"
	pathRedeemMsg = "holder/redeem"

	// MaxCodeLen is the longest code that still fits into a single seed.
	MaxCodeLen = MaxSeedLen
)

var _ paperwallet.Msg = (*StoreMsg)(nil)

// Path returns the routing path for this message.
func (StoreMsg) Path() string {
	return pathStoreMsg
}

// Validate makes sure that this is sensible.
func (m *StoreMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	errs = errors.AppendField(errs, "Code", validateCode(m.Code))
	if len(m.SecretHash) != sha256.Size {
		errs = errors.AppendField(errs, "SecretHash",
			errors.Wrapf(errors.ErrInput, "must be %d bytes", sha256.Size))
	}
	return errs
}

var _ paperwallet.Msg = (*RedeemMsg)(nil)

// Path returns the routing path for this message.
func (RedeemMsg) Path() string {
	return pathRedeemMsg
}

// Validate makes sure that this is sensible.
func (m *RedeemMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Code", validateCode(m.Code))
	if len(m.Secret) == 0 {
		errs = errors.AppendField(errs, "Secret", errors.Wrap(errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

func validateCode(code string) error {
	switch n := len(code); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "required")
	case n > MaxCodeLen:
		return errors.Wrapf(errors.ErrInput, "at most %d bytes", MaxCodeLen)
	}
	return nil
}
