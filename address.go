package paperwallet

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/paperwallet/errors"
)

// AddressLength is the length of all addresses. Holder addresses are full
// sha256 digests, so every other address shares their size.
const AddressLength = sha256.Size

// Address identifies a wallet. It is either the digest of a Condition or
// a holder location derived from a code.
//
// The text form is base58, the same alphabet wallets use to show keys.
type Address []byte

// NewAddress returns the address of arbitrary data, a sha256 digest.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:]
}

// ParseAddress decodes the base58 form returned by String.
func ParseAddress(s string) (Address, error) {
	addr := Address(base58.Decode(s))
	if len(addr) == 0 {
		return nil, errors.Wrapf(errors.ErrInput, "invalid base58 address %q", s)
	}
	return addr, addr.Validate()
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error unless the address is AddressLength long.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %X", []byte(a))
	}
	return nil
}

func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return base58.Encode(a)
}

// MarshalText returns the base58 form. An empty address is an empty
// string.
func (a Address) MarshalText() ([]byte, error) {
	if len(a) == 0 {
		return []byte{}, nil
	}
	return []byte(base58.Encode(a)), nil
}

// UnmarshalText accepts the base58 form. Genesis files may use a
// "hex:<bytes>" or a "cond:<condition>" form instead. An empty value, with
// or without a prefix, is a nil address.
func (a *Address) UnmarshalText(text []byte) error {
	format, enc := "b58", string(text)
	if i := strings.IndexByte(enc, ':'); i >= 0 {
		format, enc = enc[:i], enc[i+1:]
	}
	if enc == "" {
		*a = nil
		return nil
	}

	var (
		addr Address
		err  error
	)
	switch format {
	case "b58":
		addr, err = ParseAddress(enc)
	case "hex":
		addr, err = hex.DecodeString(enc)
		if err != nil {
			err = errors.Wrap(errors.ErrInput, err.Error())
		} else {
			err = addr.Validate()
		}
	case "cond":
		var c Condition
		if err = c.UnmarshalText([]byte(enc)); err == nil {
			addr, err = c.Address(), c.Validate()
		}
	default:
		err = errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
