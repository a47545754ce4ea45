package paperwallet

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists.
	Has(key []byte) (bool, error)
}

// SetDeleter is the write half of a KVStore. Implementations must not
// modify the given slices.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store every handler operates on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// CacheableKVStore is a KVStore that can stage writes in a cache.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap holds writes that are not yet visible in the store it
// wraps, like a database SAVEPOINT. Reads see the cached writes first.
//
// Every transaction runs on top of a cache wrap, so that a failed store or
// redeem never leaves a partially written state behind. Call Write to
// apply the cached writes or Discard to drop them.
type KVCacheWrap interface {
	// A cache wrap can be wrapped again.
	CacheableKVStore

	Write() error
	Discard()
}
