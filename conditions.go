package paperwallet

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/paperwallet/errors"
	"golang.org/x/crypto/ed25519"
)

// (?s) so that binary data containing a newline still matches.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition describes who can authorize an action, formatted as
// "<extension>/<type>/<data>". A depositor is authorized when the
// transaction carries a matching condition.
type Condition []byte

// NewCondition returns a condition for the given extension, type and
// arbitrary data.
func NewCondition(ext, typ string, data []byte) Condition {
	return append(Condition(ext+"/"+typ+"/"), data...)
}

// PubKeyCondition returns the condition satisfied by a signature of the
// given ed25519 key.
func PubKeyCondition(pub ed25519.PublicKey) Condition {
	return NewCondition("sigs", "ed25519", pub)
}

// Parse returns the extension, type and data of the condition.
func (c Condition) Parse() (string, string, []byte, error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

// Address returns the address controlled by the condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

// Equals checks if two conditions are the same.
func (c Condition) Equals(b Condition) bool {
	return bytes.Equal(c, b)
}

// Validate returns an error if the condition is not properly formatted.
func (c Condition) Validate() error {
	_, _, _, err := c.Parse()
	return err
}

// String keeps the extension and type readable and hex encodes the data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// MarshalText returns the String form. An empty condition is an empty
// string.
func (c Condition) MarshalText() ([]byte, error) {
	if len(c) == 0 {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts the String form.
func (c *Condition) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = nil
		return nil
	}
	parts := strings.Split(string(text), "/")
	if len(parts) != 3 {
		return errors.Wrap(errors.ErrInput, "invalid condition format")
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "malformed condition data: %s", err)
	}
	*c = NewCondition(parts[0], parts[1], data)
	return nil
}
