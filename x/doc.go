/*
Package x contains the standard extensions of the paper wallet application.

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application.
x/cash keeps lamport balances, x/holder implements the escrow records and
x/utils provides the transaction envelope decorators.

This package defines the Authenticator abstraction that every extension
receives in its constructor, so that the signature verification scheme can
be provided by the host.
*/
package x
