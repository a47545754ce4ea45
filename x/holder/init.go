package holder

import (
	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/gconf"
)

// Initializer fulfils the Initializer interface to load the holder
// configuration from the genesis file.
type Initializer struct{}

var _ paperwallet.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.holder.
func (Initializer) FromGenesis(opts paperwallet.Options, kv paperwallet.KVStore) error {
	return gconf.InitConfig(kv, opts, packageName, &Configuration{})
}
