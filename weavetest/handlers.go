package weavetest

import "github.com/iov-one/paperwallet"

// calls counts how many times a mock was invoked, whatever the outcome.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Handler is a paperwallet.Handler returning preset results.
//
// When WriteKey is set the handler writes WriteKey/WriteValue before
// returning, even if it then fails. That makes it useful to test that a
// failed transaction leaves no state behind.
type Handler struct {
	calls

	CheckResult paperwallet.CheckResult
	CheckErr    error

	DeliverResult paperwallet.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte
}

var _ paperwallet.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	h.check++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	h.deliver++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) write(db paperwallet.KVStore) error {
	if len(h.WriteKey) == 0 {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}
