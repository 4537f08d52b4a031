// Package app assembles message handlers into an executable
// application. A Router dispatches transactions to the handler
// registered for the message path and a decorator chain wraps every
// execution with the shared functionality (logging, recovery,
// savepoints).
package app

import (
	"fmt"
	"regexp"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/errors"
)

// isPath ensures path in the form <extension>/<action>
var isPath = regexp.MustCompile(`^[a-z]+[a-z0-9_]*/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the registered handler.
type Router struct {
	routes map[string]diap.Handler
}

var _ diap.Registry = (*Router)(nil)
var _ diap.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]diap.Handler),
	}
}

// Handle implements diap.Registry interface. This panics if a handler
// for the given path was already registered or if the path is invalid.
func (r *Router) Handle(path string, h diap.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message path, or a
// notFoundHandler if no route exists.
func (r *Router) handler(m diap.Msg) diap.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on message path.
func (r *Router) Check(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on message path.
func (r *Router) Deliver(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound, i.e. when dispatching to
// a path not registered.
type notFoundHandler string

var _ diap.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
