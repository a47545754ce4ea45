package gconf

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

// ReadStore is the part of paperwallet.ReadOnlyKVStore that Load needs.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of paperwallet.KVStore that Save needs.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by the configuration object of every
// extension. The binary form is what gets persisted, the JSON form is what
// the genesis file carries.
type Configuration interface {
	paperwallet.Persistent
	paperwallet.Validater
}

// Key returns the database key of the configuration singleton that belongs
// to the given package.
func Key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save writes a validated configuration under the package key. An invalid
// configuration is never stored.
func Save(db Store, pkg string, src Configuration) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validate %s configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s configuration", pkg)
	}
	return db.Set(Key(pkg), raw)
}

// Load reads the configuration singleton of the given package into dst.
// ErrNotFound is returned if the package was never configured.
func Load(db ReadStore, pkg string, dst paperwallet.Unmarshaller) error {
	switch raw, err := db.Get(Key(pkg)); {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration", pkg)
	default:
		return errors.Wrapf(dst.Unmarshal(raw), "unmarshal %s configuration", pkg)
	}
}

// InitConfig reads opts["conf"][pkg] into conf and saves it. A package
// missing from the genesis section is ErrNotFound, malformed JSON is
// ErrInput.
func InitConfig(db Store, opts paperwallet.Options, pkg string, conf Configuration) error {
	var section paperwallet.Options
	if err := opts.ReadOptions("conf", &section); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if _, ok := section[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "genesis has no %s configuration", pkg)
	}
	if err := section.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "%s configuration: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
