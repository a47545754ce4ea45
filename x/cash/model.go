package cash

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate accepts any balance. A stored wallet is never empty, but that is
// maintained by the controller rather than the model.
func (w *Wallet) Validate() error {
	return nil
}

// NewBucket returns a bucket holding wallets keyed by owner address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

// GenesisAccount is the genesis representation of a funded address.
type GenesisAccount struct {
	Address  paperwallet.Address `json:"address"`
	Lamports uint64              `json:"lamports"`
}
