package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/paperwallet"
	"github.com/iov-one/paperwallet/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_\-/]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path
// of its message, for example "holder/store".
type Router struct {
	routes map[string]paperwallet.Handler
}

var _ paperwallet.Registry = (*Router)(nil)
var _ paperwallet.Handler = (*Router)(nil)

// NewRouter returns a router without any route.
func NewRouter() *Router {
	return &Router{routes: make(map[string]paperwallet.Handler)}
}

// Handle routes every message with the path of msg to h. An invalid or
// already registered path panics.
func (r *Router) Handle(msg paperwallet.Msg, h paperwallet.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("path %q registered twice", path))
	}
	r.routes[path] = h
}

// Handler returns the handler for path. An unknown path gets a handler
// failing with ErrNoSuchPath, so the result is never nil.
func (r *Router) Handler(path string) paperwallet.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPath(path)
}

func (r *Router) Check(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

func (r *Router) Deliver(ctx paperwallet.Context, db paperwallet.KVStore, tx paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) route(tx paperwallet.Tx) (paperwallet.Handler, error) {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "cannot load msg")
	case msg == nil:
		return nil, errors.Wrap(errors.ErrEmpty, "transaction without message")
	}
	return r.Handler(msg.Path()), nil
}

type noSuchPath string

func (path noSuchPath) Check(paperwallet.Context, paperwallet.KVStore, paperwallet.Tx) (*paperwallet.CheckResult, error) {
	return nil, errors.Wrapf(ErrNoSuchPath, "path %q", string(path))
}

func (path noSuchPath) Deliver(paperwallet.Context, paperwallet.KVStore, paperwallet.Tx) (*paperwallet.DeliverResult, error) {
	return nil, errors.Wrapf(ErrNoSuchPath, "path %q", string(path))
}
