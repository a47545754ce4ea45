package paperwallet

import (
	"github.com/iov-one/paperwallet/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a successful Check. Failures are reported as
// errors only.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the upper bound of work the transaction may cost.
	GasAllocated int64
}

// ToABCI converts the result into a tendermint response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverResult is returned by a successful Deliver. Failures are reported
// as errors only.
type DeliverResult struct {
	// Data is a machine readable outcome, like the address of a new holder.
	Data []byte
	Log  string
	// Tags are indexed by tendermint, so that transactions touching a
	// holder can be searched for.
	Tags    []common.KVPair
	GasUsed int64
}

// ToABCI converts the result into a tendermint response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// CheckOrError returns the response of a Check call.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	switch {
	case err != nil:
		return CheckTxError(err, debug)
	case res == nil:
		return abci.ResponseCheckTx{}
	default:
		return res.ToABCI()
	}
}

// DeliverOrError returns the response of a Deliver call.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	switch {
	case err != nil:
		return DeliverTxError(err, debug)
	case res == nil:
		return abci.ResponseDeliverTx{}
	default:
		return res.ToABCI()
	}
}

// CheckTxError returns the response of a failed Check. Unless debug is
// set, errors without a registered code are redacted.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseCheckTx{Code: code, Log: failureLog("check", code, log)}
}

// DeliverTxError returns the response of a failed Deliver. Unless debug is
// set, errors without a registered code are redacted.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: failureLog("deliver", code, log)}
}

func failureLog(call string, code uint32, log string) string {
	if code == errors.SuccessABCICode {
		return log
	}
	return "cannot " + call + " tx: " + log
}

// ParseDeliverOrError restores the result or the error of a delivered
// transaction from its tendermint response.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if err := errors.ABCIError(res.Code, res.Log); err != nil {
		return nil, err
	}
	return &DeliverResult{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}, nil
}
