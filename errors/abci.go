package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors without a registered code are reported under code 1 with a
	// generic log, so that no internal details reach the client.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response for err. Unless
// debug is set, the error is redacted first. In debug mode the log carries
// the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	switch {
	case isNilErr(err):
		return SuccessABCICode, ""
	case debug:
		return abciCode(err), fmt.Sprintf("%+v", err)
	default:
		err = Redact(err, false)
		return abciCode(err), err.Error()
	}
}

// ABCIError restores an error from an ABCI response. A registered code
// gives an error wrapping the registered root error, so that Is can be
// used on the client side.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	root, ok := usedCodes[code]
	if !ok {
		return errors.New(log)
	}
	return Wrap(root, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the outermost code found in err or the internal code if
// there is none.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	code := internalABCICode
	walk(err, func(e error) bool {
		c, ok := e.(coder)
		if ok {
			code = c.ABCICode()
		}
		return !ok
	})
	return code
}

// Redact hides err behind a generic internal error, unless it is a
// registered error other than ErrPanic. Nothing is hidden in debug mode.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
