package paperwallet

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/iov-one/paperwallet/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the block information and the logger down to the
// handlers. Values are attached with the With* functions of this package.
type Context = context.Context

type ctxKey string

const (
	heightKey  ctxKey = "height"
	chainIDKey ctxKey = "chain_id"
	loggerKey  ctxKey = "logger"
	timeKey    ctxKey = "block_time"
)

var (
	// DefaultLogger is returned by GetLogger when the context has none.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID reports whether a chain id is 6 to 20 characters of
	// [a-zA-Z0-9_-].
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight attaches the block height. The height can be set only once.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("block height already set")
	}
	return context.WithValue(ctx, heightKey, height)
}

// GetHeight returns the block height and whether it was set.
func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(heightKey).(int64)
	return h, ok
}

// WithBlockTime attaches the block time, converted to UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, timeKey, t.UTC())
}

// BlockTime returns the block time. A missing or zero time is a
// programming error reported as ErrHuman.
func BlockTime(ctx Context) (time.Time, error) {
	switch t, ok := ctx.Value(timeKey).(time.Time); {
	case !ok:
		return time.Time{}, errors.Wrap(errors.ErrHuman, "no block time in context")
	case t.IsZero():
		return t, errors.Wrap(errors.ErrHuman, "zero block time in context")
	default:
		return t, nil
	}
}

// WithChainID attaches the chain id. The chain id can be set only once and
// must pass IsValidChainID.
func WithChainID(ctx Context, chainID string) Context {
	if _, ok := ctx.Value(chainIDKey).(string); ok {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain id %q", chainID))
	}
	return context.WithValue(ctx, chainIDKey, chainID)
}

// GetChainID returns the chain id. Every handler runs after InitChain, so a
// missing chain id panics.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey).(string)
	if !ok {
		panic("no chain id in context")
	}
	return id
}

// WithLogger attaches the logger used by GetLogger.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithLogInfo returns a context whose logger adds keyvals to every line.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

// GetLogger returns the context logger or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(loggerKey).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}
