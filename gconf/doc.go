/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, stored under the "_c:"
prefixed name of the extension. The object is loaded from the "conf" section
of the genesis file, for example

	{"conf": {"holder": {"application_id": "...", "allocation_fee": 10}}}

Not being able to get a configuration value is a critical condition for the
application and there is no recovery path for the client. Handlers fail the
transaction with ErrNotFound until the extension is configured.

*/
package gconf
