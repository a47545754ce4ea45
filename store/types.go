package store

import "github.com/iov-one/paperwallet"

// Aliases so that store users do not need the root package.
type (
	ReadOnlyKVStore  = paperwallet.ReadOnlyKVStore
	SetDeleter       = paperwallet.SetDeleter
	KVStore          = paperwallet.KVStore
	CacheableKVStore = paperwallet.CacheableKVStore
	KVCacheWrap      = paperwallet.KVCacheWrap
)
