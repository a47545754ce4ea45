package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is provided, nil is returned. A single error is
// returned as it is. Multi errors are flattened.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is an error that groups a list of errors.
type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:", len(m))
	for _, err := range m {
		fmt.Fprintf(&b, "\n\t* %s", err)
	}
	return b.String() + "\n"
}

// Unpack implements the unpacker interface.
func (m multiErr) Unpack() []error {
	return m
}

// ABCICode returns the code of the first error, consistent with fail fast
// approach.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}

// unpacker is implemented by errors that are a container of other errors.
type unpacker interface {
	Unpack() []error
}

// walk visits err and every error it wraps or groups, depth first. Children
// of an error are skipped when visit returns false.
func walk(err error, visit func(error) bool) {
	for !isNilErr(err) {
		if !visit(err) {
			return
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				walk(e, visit)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}

var _ coder = multiErr(nil)
var _ unpacker = multiErr(nil)
