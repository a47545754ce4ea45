/*
Package orm stores models of a single type under a common key prefix.

Holders and wallets are always addressed by a deterministic key, so a
bucket supports lookups by that key only. There are no secondary indexes
or sequences.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by every entity kept in a ModelBucket.
type Model interface {
	paperwallet.Persistent
	paperwallet.Validater
}

// ModelBucket stores models of a single type keyed by their primary key.
type ModelBucket interface {
	// One loads the model stored under key into dest. ErrNotFound is
	// returned if there is none and ErrType if dest is not of the bucket
	// type.
	One(db paperwallet.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if a model is stored under key, ErrNotFound
	// otherwise. The payload is not decoded.
	Has(db paperwallet.ReadOnlyKVStore, key []byte) error

	// Put validates m and stores it under key, replacing any previous
	// model.
	Put(db paperwallet.KVStore, key []byte, m Model) error

	// Delete removes the model stored under key. ErrNotFound is returned
	// if there is none.
	Delete(db paperwallet.KVStore, key []byte) error

	// Register makes the bucket available to queries under "/"+name.
	Register(name string, r paperwallet.QueryRouter)
}

// NewModelBucket returns a bucket holding models of the same type as
// proto. The name prefixes every key and must be 3 to 10 lowercase letters
// or underscores.
func NewModelBucket(name string, proto Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	return &modelBucket{
		name:   name,
		prefix: []byte(name + ":"),
		model:  reflect.TypeOf(proto),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)
var _ paperwallet.QueryHandler = (*modelBucket)(nil)

// dbKey returns a new slice, so that keys of consecutive calls never share
// memory.
func (b *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

func (b *modelBucket) One(db paperwallet.ReadOnlyKVStore, key []byte, dest Model) error {
	if t := reflect.TypeOf(dest); t != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot load into %s", b.name, t)
	}
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "load")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "%s %X", b.name, key)
	}
	return nil
}

func (b *modelBucket) Has(db paperwallet.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty key")
	}
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "has")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return nil
}

func (b *modelBucket) Put(db paperwallet.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	}
	if t := reflect.TypeOf(m); t != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot store %s", b.name, t)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	if err := db.Set(b.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (b *modelBucket) Delete(db paperwallet.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	return db.Delete(b.dbKey(key))
}

func (b *modelBucket) Register(name string, r paperwallet.QueryRouter) {
	r.Register("/"+name, b)
}

// Query returns the raw model stored under the key given as data, or
// nothing if there is none. Only KeyQueryMod is supported.
func (b *modelBucket) Query(db paperwallet.ReadOnlyKVStore, mod string, data []byte) ([]paperwallet.Model, error) {
	if mod != paperwallet.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	key := b.dbKey(data)
	raw, err := db.Get(key)
	if err != nil || raw == nil {
		return nil, err
	}
	return []paperwallet.Model{paperwallet.Pair(key, raw)}, nil
}
