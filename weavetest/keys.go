package weavetest

import (
	"crypto/rand"

	"github.com/iov-one/paperwallet"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a freshly generated ed25519 key pair.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() paperwallet.Condition {
	pub, _ := NewKey()
	return paperwallet.PubKeyCondition(pub)
}
