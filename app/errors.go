package app

import "github.com/iov-one/paperwallet/errors"

var (
	// ErrNoSuchPath is returned when a message path has no handler.
	ErrNoSuchPath = errors.Register(1000, "path not registered")
)
