package holder

import (
	"testing"

	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/weavetest/assert"
)

func TestHolderSerialization(t *testing.T) {
	h := Holder{Bump: 254, Funded: true}
	raw, err := h.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, HolderSize, len(raw))
	// sha256("account:Holder")[:8]
	assert.Equal(t, []byte{0x25, 0x79, 0x01, 0x28, 0x37, 0x2e, 0xc7, 0x9d}, raw[:8])
	assert.Equal(t, []byte{254, 1}, raw[8:])

	var got Holder
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, h, got)
}

func TestHolderUnmarshalRejects(t *testing.T) {
	valid, err := (&Holder{Bump: 7}).Marshal()
	assert.Nil(t, err)

	corrupt := func(i int, b byte) []byte {
		cpy := append([]byte(nil), valid...)
		cpy[i] = b
		return cpy
	}

	cases := map[string][]byte{
		"empty":               nil,
		"too short":           valid[:HolderSize-1],
		"too long":            append(append([]byte(nil), valid...), 0),
		"wrong discriminator": corrupt(0, valid[0]^0xff),
		"invalid funded flag": corrupt(HolderSize-1, 2),
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			var h Holder
			assert.IsErr(t, errors.ErrModel, h.Unmarshal(raw))
		})
	}
}

func TestHolderValidate(t *testing.T) {
	assert.Nil(t, (&Holder{Bump: 1}).Validate())
	assert.FieldError(t, (&Holder{Funded: true}).Validate(), "Bump", errors.ErrModel)
}
