/*
Package errors provides the coded errors returned by paperwallet handlers.

Every error that reaches a client wraps one of the root errors created with
Register. The code of the root error becomes the ABCI response code, so a
client can tell a failed redeem (x/holder) from a lack of funds (x/cash)
without parsing the log. Extensions register their own codes in a range
that does not overlap with this package:

	x/cash    1200+
	x/holder  1300+

Wrap a root error where the failure is detected:

	return errors.Wrapf(errors.ErrState, "holder %s", addr)

The first wrap records a stack trace. Format an error with %+v to print it,
%s prints the message only. Validation errors of a single field are created
with Field and grouped with Append or AppendField.
*/
package errors
