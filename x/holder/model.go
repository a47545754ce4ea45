package holder

import (
	"crypto/sha256"

	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/orm"
)

const (
	// BucketName is where holders are stored.
	BucketName = "holder"

	discriminatorSize = 8
	// HolderSize is the size of a serialized holder.
	HolderSize = discriminatorSize + 2
)

// discriminator prefixes every serialized holder so that a record of any
// other type is never mistaken for one.
var discriminator = func() []byte {
	h := sha256.Sum256([]byte("account:Holder"))
	return h[:discriminatorSize]
}()

// Holder is the state kept at a derived holder address.
type Holder struct {
	// Bump is the canonical bump found when the address was derived. It
	// never changes.
	Bump byte `json:"bump"`
	// Funded is set once the deposit was made and cleared on redeem.
	Funded bool `json:"funded"`
}

var _ orm.Model = (*Holder)(nil)

// Marshal returns the fixed size representation of the holder.
func (h *Holder) Marshal() ([]byte, error) {
	raw := make([]byte, HolderSize)
	copy(raw, discriminator)
	raw[discriminatorSize] = h.Bump
	if h.Funded {
		raw[discriminatorSize+1] = 1
	}
	return raw, nil
}

// Unmarshal loads the holder from its fixed size representation.
func (h *Holder) Unmarshal(raw []byte) error {
	if len(raw) != HolderSize {
		return errors.Wrapf(errors.ErrModel, "holder must be %d bytes, got %d", HolderSize, len(raw))
	}
	for i, b := range discriminator {
		if raw[i] != b {
			return errors.Wrap(errors.ErrModel, "not a holder")
		}
	}
	var funded bool
	switch raw[discriminatorSize+1] {
	case 0:
	case 1:
		funded = true
	default:
		return errors.Wrapf(errors.ErrModel, "invalid funded flag %d", raw[discriminatorSize+1])
	}
	h.Bump = raw[discriminatorSize]
	h.Funded = funded
	return nil
}

// Validate requires a bump that could have come out of a derivation.
func (h *Holder) Validate() error {
	if h.Bump == 0 {
		return errors.Field("Bump", errors.ErrModel, "bump must be positive")
	}
	return nil
}

// NewBucket returns a bucket for holders keyed by their derived address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Holder{})
}
