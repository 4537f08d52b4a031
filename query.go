package diap

import (
	"fmt"
)

// Query mods defined by the protocol. An empty mod defaults to
// KeyQueryMod.
const (
	// KeyQueryMod means to query for exactly this key.
	KeyQueryMod = ""

	// PrefixQueryMod means to query for anything with this prefix.
	PrefixQueryMod = "prefix"
)

// QueryHandler is anything that can process read requests against the
// database at a given path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter allows us to register many query handlers to be found by
// exact path match.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter, ready to register handlers.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// Register adds a new handler for a given path. This is meant to be
// called during setup and will panic if a duplicate path is registered.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path, or nil if none.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
