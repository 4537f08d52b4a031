package utils

import (
	"context"
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
)

type panicHandler struct{}

var _ diap.Handler = panicHandler{}

func (panicHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	panic("boom")
}

func (panicHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	panic("boom")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &diaptest.Tx{Msg: &diaptest.Msg{RoutePath: "test/panic"}}

	rec := NewRecovery()

	_, err := rec.Check(ctx, db, tx, panicHandler{})
	assert.Error(t, err)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = rec.Deliver(ctx, db, tx, panicHandler{})
	assert.Error(t, err)
	assert.True(t, errors.ErrPanic.Is(err))
}
