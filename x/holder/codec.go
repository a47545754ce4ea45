package holder

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

// Configuration is the genesis provided setup of the holder extension.
type Configuration struct {
	// ApplicationID is the identity of the application that owns every
	// holder address.
	ApplicationID paperwallet.Address `protobuf:"bytes,1,opt,name=application_id,proto3" json:"application_id"`
	// AllocationFee is charged to the depositor for allocating a holder.
	AllocationFee uint64 `protobuf:"varint,2,opt,name=allocation_fee,proto3" json:"allocation_fee"`
	// FeeCollector is credited with the allocation fee.
	FeeCollector paperwallet.Address `protobuf:"bytes,3,opt,name=fee_collector,proto3" json:"fee_collector"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationPB)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return unmarshal(raw, (*configurationPB)(c), "configuration")
}

// StoreMsg creates a holder and funds it.
type StoreMsg struct {
	Depositor  paperwallet.Address `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	Code       string              `protobuf:"bytes,2,opt,name=code,proto3" json:"code"`
	SecretHash []byte              `protobuf:"bytes,3,opt,name=secret_hash,proto3" json:"secret_hash"`
	Amount     uint64              `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
}

func (m *StoreMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*storeMsgPB)(m))
}

func (m *StoreMsg) Unmarshal(raw []byte) error {
	return unmarshal(raw, (*storeMsgPB)(m), "store msg")
}

// RedeemMsg drains a holder to the destination.
type RedeemMsg struct {
	Code        string              `protobuf:"bytes,1,opt,name=code,proto3" json:"code"`
	Secret      []byte              `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret"`
	Destination paperwallet.Address `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination"`
}

func (m *RedeemMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*redeemMsgPB)(m))
}

func (m *RedeemMsg) Unmarshal(raw []byte) error {
	return unmarshal(raw, (*redeemMsgPB)(m), "redeem msg")
}

// The PB types are the protobuf views of the types above. They have no
// Marshal method of their own, so gogo encodes them from the struct tags.
type (
	configurationPB Configuration
	storeMsgPB      StoreMsg
	redeemMsgPB     RedeemMsg
)

func (m *configurationPB) Reset()         { *m = configurationPB{} }
func (m *configurationPB) String() string { return proto.CompactTextString(m) }
func (*configurationPB) ProtoMessage()    {}

func (m *storeMsgPB) Reset()         { *m = storeMsgPB{} }
func (m *storeMsgPB) String() string { return proto.CompactTextString(m) }
func (*storeMsgPB) ProtoMessage()    {}

func (m *redeemMsgPB) Reset()         { *m = redeemMsgPB{} }
func (m *redeemMsgPB) String() string { return proto.CompactTextString(m) }
func (*redeemMsgPB) ProtoMessage()    {}

func unmarshal(raw []byte, pb proto.Message, what string) error {
	if err := proto.Unmarshal(raw, pb); err != nil {
		return errors.Wrapf(errors.ErrInput, "%s: %s", what, err)
	}
	return nil
}
