package app

import (
	"context"
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()
	h := &diaptest.Handler{}
	r.Handle("test/good", h)

	tx := &diaptest.Tx{Msg: &diaptest.Msg{RoutePath: "test/good"}}
	db := store.MemStore()

	_, err := r.Check(context.Background(), db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(context.Background(), db, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoRoute(t *testing.T) {
	r := NewRouter()
	tx := &diaptest.Tx{Msg: &diaptest.Msg{RoutePath: "test/missing"}}
	db := store.MemStore()

	_, err := r.Check(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()
	broken := errors.Wrap(errors.ErrInput, "cannot extract")
	tx := &diaptest.Tx{Err: broken}
	db := store.MemStore()

	_, err := r.Check(context.Background(), db, tx)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestRouterPanics(t *testing.T) {
	r := NewRouter()
	h := &diaptest.Handler{}
	r.Handle("test/good", h)

	assert.Panics(t, func() { r.Handle("test/good", h) }, "duplicate route")
	assert.Panics(t, func() { r.Handle("no-slash", h) }, "invalid path")
	assert.Panics(t, func() { r.Handle("Test/Upper", h) }, "invalid path")
}

func TestRouterImplementsRegistry(t *testing.T) {
	var _ diap.Registry = NewRouter()
}
