package cash

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r diap.Registry, auth x.Authenticator, control Controller) {
	r.Handle("cash/send", NewSendHandler(auth, control))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr diap.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ diap.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	var msg SendMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}

	res := diap.CheckResult{
		GasAllocated: sendTxCost,
	}
	return &res, nil
}

// Deliver moves the tokens from source to destination if
// all preconditions are met
func (h SendHandler) Deliver(ctx diap.Context, store diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	var msg SendMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}

	if err := h.control.MoveCoins(store, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{}, nil
}
