package utils

import (
	"time"

	"github.com/iov-one/paperwallet"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one log line per transaction with its path, duration and
// outcome. Failures are logged at Error level, successful checks at Debug
// and successful deliveries at Info.
type Logging struct{}

var _ paperwallet.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Checker) (*paperwallet.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)

	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("check failed", "err", err)
	case res != nil:
		logger.Debug(res.Log)
	default:
		logger.Debug("checked")
	}
	return res, err
}

func (Logging) Deliver(ctx paperwallet.Context, store paperwallet.KVStore, tx paperwallet.Tx, next paperwallet.Deliverer) (*paperwallet.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)

	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("deliver failed", "err", err)
	case res != nil:
		logger.Info(res.Log)
	default:
		logger.Info("delivered")
	}
	return res, err
}

func txLogger(ctx paperwallet.Context, tx paperwallet.Tx, start time.Time) log.Logger {
	return paperwallet.GetLogger(ctx).With(
		"duration", time.Since(start)/time.Microsecond,
		"path", txPath(tx),
	)
}

func txPath(tx paperwallet.Tx) string {
	if tx == nil {
		return "(missing)"
	}
	return paperwallet.GetPath(tx)
}
