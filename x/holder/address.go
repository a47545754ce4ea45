package holder

import (
	"crypto/sha256"
	"encoding/binary"

	"filippo.io/edwards25519"
	lru "github.com/hashicorp/golang-lru"
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included, that can be
	// used to create an address.
	MaxSeeds = 16
	// MaxSeedLen is the maximum length in bytes of a single seed.
	MaxSeedLen = 32

	pdaMarker = "ProgramDerivedAddress"
)

// AddressScheme maps a list of seeds and an application identity to a
// canonical address and the bump that was used to find it.
//
// Implementations must be pure. The same input must always result in the
// same output, because the depositor and the redeemer compute the address
// independently.
type AddressScheme interface {
	Derive(seeds [][]byte, applicationID paperwallet.Address) (paperwallet.Address, byte, error)
}

// ProgramAddressScheme derives program addresses the way the Solana runtime
// does, so that an address computed off chain by any Solana client matches
// bit for bit.
//
// Bumps are tried from 255 down to 1 and the first, that is the highest,
// one that yields an address off the ed25519 curve wins.
type ProgramAddressScheme struct{}

var _ AddressScheme = ProgramAddressScheme{}

// Derive returns the address for given seeds and the canonical bump. At most
// MaxSeeds-1 seeds are accepted, as the bump takes the last slot.
func (ProgramAddressScheme) Derive(seeds [][]byte, applicationID paperwallet.Address) (paperwallet.Address, byte, error) {
	if len(seeds) >= MaxSeeds {
		return nil, 0, errors.Wrapf(ErrInvalidSeeds, "%d seeds, at most %d allowed", len(seeds), MaxSeeds-1)
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := []byte{0}
	withBump[len(seeds)] = bump

	for b := 255; b > 0; b-- {
		bump[0] = byte(b)
		addr, err := CreateAddress(withBump, applicationID)
		if err == nil {
			return addr, byte(b), nil
		}
		if err != errOnCurve {
			return nil, 0, err
		}
	}
	return nil, 0, errors.Wrap(ErrNoViableBump, "all bumps yield on curve addresses")
}

// errOnCurve is returned by CreateAddress for a digest that is a valid
// public key.
var errOnCurve = errors.Wrap(ErrInvalidSeeds, "address on curve")

// CreateAddress computes the address of fully specified seeds, bump
// included. It fails with ErrInvalidSeeds when the result lies on the
// ed25519 curve.
func CreateAddress(seeds [][]byte, applicationID paperwallet.Address) (paperwallet.Address, error) {
	if err := applicationID.Validate(); err != nil {
		return nil, errors.Wrap(err, "application id")
	}
	if len(seeds) > MaxSeeds {
		return nil, errors.Wrapf(ErrInvalidSeeds, "%d seeds, at most %d allowed", len(seeds), MaxSeeds)
	}

	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return nil, errors.Wrapf(ErrInvalidSeeds, "seed %d is %d bytes long", i, len(s))
		}
		_, _ = h.Write(s)
	}
	_, _ = h.Write(applicationID)
	_, _ = h.Write([]byte(pdaMarker))
	digest := h.Sum(nil)

	if IsOnCurve(digest) {
		return nil, errOnCurve
	}
	return paperwallet.Address(digest), nil
}

// IsOnCurve returns true if given bytes are a valid compressed ed25519 point.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// SecretCommitment returns the commitment published in place of the
// redemption secret.
func SecretCommitment(secret []byte) []byte {
	h := sha256.Sum256(secret)
	return h[:]
}

// Seeds returns the derivation seeds of a holder.
func Seeds(code string, commitment []byte) [][]byte {
	return [][]byte{[]byte(code), commitment}
}

// CachingScheme memoizes the results of another scheme in a bounded LRU
// cache. Only successful derivations are cached. It is safe for concurrent
// use.
type CachingScheme struct {
	scheme AddressScheme
	cache  *lru.Cache
}

var _ AddressScheme = (*CachingScheme)(nil)

// NewCachingScheme wraps given scheme with a cache holding up to size
// results. It panics if size is not positive.
func NewCachingScheme(scheme AddressScheme, size int) *CachingScheme {
	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &CachingScheme{scheme: scheme, cache: cache}
}

type derivation struct {
	addr paperwallet.Address
	bump byte
}

func (c *CachingScheme) Derive(seeds [][]byte, applicationID paperwallet.Address) (paperwallet.Address, byte, error) {
	key := cacheKey(seeds, applicationID)
	if v, ok := c.cache.Get(key); ok {
		d := v.(derivation)
		return copyAddr(d.addr), d.bump, nil
	}
	addr, bump, err := c.scheme.Derive(seeds, applicationID)
	if err != nil {
		return nil, 0, err
	}
	c.cache.Add(key, derivation{addr: copyAddr(addr), bump: bump})
	return addr, bump, nil
}

// Len returns the number of cached derivations.
func (c *CachingScheme) Len() int {
	return c.cache.Len()
}

// cacheKey length prefixes every element so that different seed splits of
// the same bytes never share a key.
func cacheKey(seeds [][]byte, applicationID paperwallet.Address) string {
	buf := make([]byte, 0, 128)
	var size [binary.MaxVarintLen64]byte
	put := func(b []byte) {
		n := binary.PutUvarint(size[:], uint64(len(b)))
		buf = append(buf, size[:n]...)
		buf = append(buf, b...)
	}
	for _, s := range seeds {
		put(s)
	}
	put(applicationID)
	return string(buf)
}

func copyAddr(a paperwallet.Address) paperwallet.Address {
	cpy := make(paperwallet.Address, len(a))
	copy(cpy, a)
	return cpy
}
