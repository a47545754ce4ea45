package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

// Wallet holds the balance of a single address.
type Wallet struct {
	Lamports uint64 `protobuf:"varint,1,opt,name=lamports,proto3" json:"lamports"`
}

func (w *Wallet) Marshal() ([]byte, error) {
	return proto.Marshal((*walletPB)(w))
}

func (w *Wallet) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*walletPB)(w)); err != nil {
		return errors.Wrapf(errors.ErrInput, "wallet: %s", err)
	}
	return nil
}

// SendMsg moves lamports from one account to another.
type SendMsg struct {
	Source      paperwallet.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source"`
	Destination paperwallet.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination"`
	Lamports    uint64              `protobuf:"varint,3,opt,name=lamports,proto3" json:"lamports"`
	Memo        string              `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgPB)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*sendMsgPB)(m)); err != nil {
		return errors.Wrapf(errors.ErrInput, "send msg: %s", err)
	}
	return nil
}

// walletPB and sendMsgPB are the protobuf views of Wallet and SendMsg.
// Without a Marshal method of their own gogo encodes them from the struct
// tags.
type (
	walletPB  Wallet
	sendMsgPB SendMsg
)

func (m *walletPB) Reset()         { *m = walletPB{} }
func (m *walletPB) String() string { return proto.CompactTextString(m) }
func (*walletPB) ProtoMessage()    {}

func (m *sendMsgPB) Reset()         { *m = sendMsgPB{} }
func (m *sendMsgPB) String() string { return proto.CompactTextString(m) }
func (*sendMsgPB) ProtoMessage()    {}
