package holder

import (
	"github.com/iov-one/paperwallet/errors"
	"github.com/iov-one/paperwallet/gconf"
)

const packageName = "holder"

// Validate ensures the configuration can be used to derive and allocate
// holders.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ApplicationID", c.ApplicationID.Validate())
	errs = errors.AppendField(errs, "FeeCollector", c.FeeCollector.Validate())
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
