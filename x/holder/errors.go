package holder

import (
	"github.com/iov-one/paperwallet/errors"
)

var (
	// ErrNonEmptyStore is returned when storing into a holder that is
	// already funded.
	ErrNonEmptyStore = errors.Register(1300, "holder already funded")

	// ErrEmptyRedeem is returned when redeeming a holder that does not
	// exist or is not funded.
	ErrEmptyRedeem = errors.Register(1301, "holder not funded")

	// ErrNoViableBump is returned when none of the bump values produces an
	// address that is off the ed25519 curve.
	ErrNoViableBump = errors.Register(1302, "no viable bump")

	// ErrInvalidSeeds is returned when derivation seeds exceed the
	// allowed count or size, or produce a point on the curve.
	ErrInvalidSeeds = errors.Register(1303, "invalid seeds")
)
