package cash

import (
	"github.com/iov-one/paperwallet/errors"
)

var (
	// ErrInsufficientLamports is returned when an account does not hold
	// enough lamports to cover the requested transfer.
	ErrInsufficientLamports = errors.Register(1200, "insufficient lamports")
)
