package paperwallet

import (
	"reflect"

	"github.com/iov-one/paperwallet/errors"
)

// Validater is implemented by anything that can check its own consistency.
type Validater interface {
	Validate() error
}

// Marshaller is anything that has a binary representation.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Unmarshaller loads its state from the binary representation. It almost
// always needs a pointer receiver.
type Unmarshaller interface {
	Unmarshal([]byte) error
}

// Persistent can be written to and read from the store.
type Persistent interface {
	Marshaller
	Unmarshaller
}

// Msg is the request carried by a transaction. Handlers are found by the
// message path, so several message types may share one handler.
//
// A path is made of [0-9A-Za-z_\-/] characters, for example "holder/store".
type Msg interface {
	Persistent
	Validater
	Path() string
}

// Tx is what a client submits. It wraps exactly one message. Paper wallet
// transactions carry no signatures, the Tx only has to expose who is
// acting through its conditions, see x.Authenticator.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the transaction message, or "(missing)" if
// the message cannot be read.
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg copies the transaction message into destination, which must be a
// pointer of the same type as the message, and validates it.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}

	dst, src := reflect.ValueOf(destination), reflect.ValueOf(msg)
	switch {
	case dst.Kind() != reflect.Ptr:
		return errors.Wrapf(errors.ErrType, "destination %T is not a pointer", destination)
	case src.Kind() != reflect.Ptr:
		return errors.Wrapf(errors.ErrType, "message %T is not a pointer", msg)
	case src.Type() != dst.Type():
		return errors.Wrapf(errors.ErrType, "cannot load %T message into %T", msg, destination)
	}
	dst.Elem().Set(src.Elem())

	return errors.Wrap(msg.Validate(), "invalid message")
}
