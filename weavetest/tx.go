package weavetest

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

var errNoCodec = errors.Wrap(errors.ErrHuman, "test transaction has no binary form")

// Tx wraps a single message. It cannot be serialized.
type Tx struct {
	Msg paperwallet.Msg
	// Err is returned by GetMsg together with Msg.
	Err error
}

var _ paperwallet.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (paperwallet.Msg, error) {
	return tx.Msg, tx.Err
}

func (*Tx) Marshal() ([]byte, error) {
	return nil, errNoCodec
}

func (*Tx) Unmarshal([]byte) error {
	return errNoCodec
}

// Msg is routed by its path and never interpreted by a handler.
type Msg struct {
	RoutePath string
	// Serialized is what Marshal returns and what Unmarshal stores.
	Serialized []byte
	// Err is returned by Marshal and Unmarshal.
	Err error
	// ValidErr is returned by Validate.
	ValidErr error
}

var _ paperwallet.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.ValidErr
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
