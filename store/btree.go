package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/paperwallet/errors"
)

// degree of every tree. Keys are short addresses, so nodes stay small.
const degree = 8

// entry is a single key of a tree. A tombstone marks a key deleted by a
// cache, so that reads do not fall through to the parent store.
type entry struct {
	key       []byte
	value     []byte
	tombstone bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// MemStore returns an empty store that lives in memory only.
func MemStore() CacheableKVStore {
	return &memStore{tree: btree.New(degree)}
}

type memStore struct {
	tree *btree.BTree
}

var _ CacheableKVStore = (*memStore)(nil)

func (m *memStore) Get(key []byte) ([]byte, error) {
	if it := m.tree.Get(entry{key: key}); it != nil {
		return it.(entry).value, nil
	}
	return nil, nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	return m.tree.Has(entry{key: key}), nil
}

func (m *memStore) Set(key, value []byte) error {
	m.tree.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (m *memStore) Delete(key []byte) error {
	m.tree.Delete(entry{key: key})
	return nil
}

func (m *memStore) CacheWrap() KVCacheWrap {
	return NewCacheWrap(m)
}

// CacheWrap stages writes over a parent store. Write applies them to the
// parent in key order.
type CacheWrap struct {
	parent  KVStore
	pending *btree.BTree
	free    *btree.FreeList
}

var _ KVCacheWrap = (*CacheWrap)(nil)

// NewCacheWrap returns an empty cache over parent.
func NewCacheWrap(parent KVStore) *CacheWrap {
	return newCacheWrap(parent, btree.NewFreeList(btree.DefaultFreeListSize))
}

func newCacheWrap(parent KVStore, free *btree.FreeList) *CacheWrap {
	return &CacheWrap{
		parent:  parent,
		pending: btree.NewWithFreeList(degree, free),
		free:    free,
	}
}

// CacheWrap stacks another cache on top of this one. Both share the free
// list, as a nested cache never outlives its parent.
func (c *CacheWrap) CacheWrap() KVCacheWrap {
	return newCacheWrap(c, c.free)
}

func (c *CacheWrap) Get(key []byte) ([]byte, error) {
	if it := c.pending.Get(entry{key: key}); it != nil {
		return it.(entry).value, nil
	}
	return c.parent.Get(key)
}

func (c *CacheWrap) Has(key []byte) (bool, error) {
	if it := c.pending.Get(entry{key: key}); it != nil {
		return !it.(entry).tombstone, nil
	}
	return c.parent.Has(key)
}

func (c *CacheWrap) Set(key, value []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (c *CacheWrap) Delete(key []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, tombstone: true})
	return nil
}

// Write applies all staged writes to the parent store and empties the
// cache. On failure the parent may hold a part of the writes.
func (c *CacheWrap) Write() error {
	var err error
	c.pending.Ascend(func(it btree.Item) bool {
		e := it.(entry)
		if e.tombstone {
			err = c.parent.Delete(e.key)
		} else {
			err = c.parent.Set(e.key, e.value)
		}
		return err == nil
	})
	c.Discard()
	return errors.Wrap(err, "write cache")
}

// Discard drops all staged writes.
func (c *CacheWrap) Discard() {
	c.pending.Clear(true)
}
