package app

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// BaseApp executes raw transactions against a store.
//
// All DeliverTx calls of a block write into a single block cache that is
// flushed to the underlying store on Commit. CheckTx runs against a
// throwaway cache and never modifies the state.
type BaseApp struct {
	name    string
	db      paperwallet.CacheableKVStore
	block   paperwallet.KVCacheWrap
	decoder paperwallet.TxDecoder
	handler paperwallet.Handler
	queries paperwallet.QueryRouter
	init    paperwallet.Initializer
	logger  log.Logger
	debug   bool

	chainID      string
	baseContext  paperwallet.Context
	blockContext paperwallet.Context
}

// NewBaseApp constructs an application over given store. If the store was
// already initialized, the chain id is loaded from it.
func NewBaseApp(
	name string,
	db paperwallet.CacheableKVStore,
	decoder paperwallet.TxDecoder,
	handler paperwallet.Handler,
	queries paperwallet.QueryRouter,
	baseContext paperwallet.Context,
) (*BaseApp, error) {
	b := &BaseApp{
		name:        name,
		db:          db,
		decoder:     decoder,
		handler:     handler,
		queries:     queries,
		baseContext: baseContext,
	}
	b = b.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(db)
	if err != nil {
		return nil, err
	}
	if chainID != "" {
		b.chainID = chainID
		b.baseContext = paperwallet.WithChainID(b.baseContext, chainID)
	}
	b.blockContext = b.baseContext
	return b, nil
}

// WithInit sets the initializer called by InitChain.
func (b *BaseApp) WithInit(init paperwallet.Initializer) *BaseApp {
	b.init = init
	return b
}

// WithLogger sets the logger on the application and its base context.
func (b *BaseApp) WithLogger(logger log.Logger) *BaseApp {
	b.baseContext = paperwallet.WithLogger(b.baseContext, logger)
	b.logger = logger
	return b
}

// WithDebug controls if full error information is returned to the client.
func (b *BaseApp) WithDebug(debug bool) *BaseApp {
	b.debug = debug
	return b
}

// Info reports the application name and the state machine version.
func (b *BaseApp) Info() abci.ResponseInfo {
	return abci.ResponseInfo{
		Data:    b.name,
		Version: paperwallet.Version(),
	}
}

// ChainID returns the chain id set by InitChain, if any.
func (b *BaseApp) ChainID() string {
	return b.chainID
}

// InitChain loads the genesis application state. It can be called only
// once for a given store.
func (b *BaseApp) InitChain(chainID string, appState []byte) error {
	if b.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain %s", b.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app state not set in genesis")
	}
	var opts paperwallet.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	cache := b.db.CacheWrap()
	if err := saveChainID(cache, chainID); err != nil {
		cache.Discard()
		return err
	}
	if b.init != nil {
		if err := b.init.FromGenesis(opts, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	b.chainID = chainID
	b.baseContext = paperwallet.WithChainID(b.baseContext, chainID)
	b.blockContext = b.baseContext
	b.logger.Info("Chain initialized", "chain_id", chainID)
	return nil
}

// BeginBlock sets up the block context and starts a new block cache.
func (b *BaseApp) BeginBlock(height int64, now time.Time) {
	ctx := paperwallet.WithHeight(b.baseContext, height)
	ctx = paperwallet.WithBlockTime(ctx, now)
	b.blockContext = ctx
	if b.block != nil {
		b.block.Discard()
	}
	b.block = b.db.CacheWrap()
}

// DeliverTx decodes and executes given transaction. Result is written into
// the current block.
func (b *BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return paperwallet.DeliverTxError(err, b.debug)
	}
	if b.block == nil {
		return paperwallet.DeliverTxError(errors.Wrap(errors.ErrState, "no block in progress"), b.debug)
	}

	ctx := paperwallet.WithLogInfo(b.blockContext,
		"call", "deliver_tx",
		"path", paperwallet.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.block, tx)
	return paperwallet.DeliverOrError(res, err, b.debug)
}

// CheckTx decodes and validates given transaction without persisting any
// changes.
func (b *BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return paperwallet.CheckTxError(err, b.debug)
	}

	ctx := paperwallet.WithLogInfo(b.blockContext,
		"call", "check_tx",
		"path", paperwallet.GetPath(tx))

	var db paperwallet.CacheableKVStore = b.db
	if b.block != nil {
		db = b.block
	}
	cache := db.CacheWrap()
	defer cache.Discard()

	res, err := b.handler.Check(ctx, cache, tx)
	return paperwallet.CheckOrError(res, err, b.debug)
}

// Commit writes the current block into the underlying store.
func (b *BaseApp) Commit() error {
	if b.block == nil {
		return nil
	}
	if err := b.block.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	b.block = nil
	b.logger.Debug("Commit synced")
	return nil
}

// Query executes a query against the committed state. Path may be followed
// by "?<mod>" to select the query modifier.
func (b *BaseApp) Query(path string, data []byte) ([]paperwallet.Model, error) {
	path, mod := splitPath(path)
	qh := b.queries.Handler(path)
	if qh == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "query path %q", path)
	}
	return qh.Query(b.db, mod, data)
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

// loadTx calls the decoder, and capture any panics
func (b *BaseApp) loadTx(txBytes []byte) (tx paperwallet.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(txBytes)
}
